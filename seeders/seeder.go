package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDictionaries наполняет справочники: категории, сотрудников и
// демонстрационный парк оборудования.
func SeedDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения справочников...")

	if err := seedCategories(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения категорий: %v", err)
	}
	if err := seedEmployees(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения сотрудников: %v", err)
	}
	if err := seedEquipments(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения оборудования: %v", err)
	}

	log.Println("✅ Наполнение справочников завершено!")
}

// SeedAdmin создает учётную запись администратора для обработки заявок.
func SeedAdmin(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск создания администратора...")

	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка создания администратора: %v", err)
	}

	log.Println("✅ Администратор настроен!")
}
