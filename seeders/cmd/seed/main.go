package main

import (
	"flag"
	"log"

	"equipment-system/pkg/config"
	"equipment-system/pkg/database/postgresql"
	"equipment-system/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runDictionaries := flag.Bool("dictionaries", false, "Запустить наполнение справочников (категории, сотрудники, оборудование)")
	runAdmin := flag.Bool("admin", false, "Запустить создание администратора")
	runAll := flag.Bool("all", false, "Запустить все сидеры")

	flag.Parse()

	if !*runDictionaries && !*runAdmin && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -dictionaries")
		log.Println("  go run ./seeders/cmd/seed -all")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	log.Println("======================================================")

	if *runAll || *runDictionaries {
		seeders.SeedDictionaries(dbPool)
		log.Println("======================================================")
	}

	if *runAll || *runAdmin {
		seeders.SeedAdmin(dbPool)
		log.Println("======================================================")
	}

	log.Println("🏁 Все выбранные сидеры отработали.")
}
