package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedCategories(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение категорий оборудования...")

	categories := []struct {
		Name        string
		Description string
	}{
		{"Ноутбук", "Портативные рабочие станции"},
		{"Монитор", "Внешние дисплеи"},
		{"Телефон", "Корпоративные смартфоны"},
		{"Периферия", "Клавиатуры, мыши, гарнитуры"},
		{"Сетевое оборудование", "Роутеры, коммутаторы, модемы"},
	}

	for _, c := range categories {
		_, err := db.Exec(ctx,
			`INSERT INTO categories (name, description) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			c.Name, c.Description,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedEmployees(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение сотрудников...")

	employees := []struct {
		Fio        string
		Email      string
		Department string
		Position   string
	}{
		{"Иванов Иван Иванович", "i.ivanov@example.com", "Бухгалтерия", "Бухгалтер"},
		{"Петрова Анна Сергеевна", "a.petrova@example.com", "Отдел продаж", "Менеджер"},
		{"Сидоров Павел Олегович", "p.sidorov@example.com", "ИТ-отдел", "Разработчик"},
	}

	for _, e := range employees {
		_, err := db.Exec(ctx,
			`INSERT INTO employees (fio, email, department, position) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING`,
			e.Fio, e.Email, e.Department, e.Position,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedEquipments(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение оборудования...")

	equipments := []struct {
		Name      string
		Brand     string
		Model     string
		Serial    string
		Condition string
		Category  string
	}{
		{"Ноутбук Dell Latitude 5540", "Dell", "Latitude 5540", "DL5540-0001", "excellent", "Ноутбук"},
		{"Ноутбук Lenovo ThinkPad T14", "Lenovo", "ThinkPad T14", "LT14-0002", "good", "Ноутбук"},
		{"Монитор LG 27UL500", "LG", "27UL500", "LG27-0003", "good", "Монитор"},
		{"Смартфон Samsung Galaxy A54", "Samsung", "Galaxy A54", "SG54-0004", "excellent", "Телефон"},
	}

	for _, e := range equipments {
		_, err := db.Exec(ctx, `
			INSERT INTO equipments (name, brand, model, serial_number, status, condition, category_id)
			VALUES ($1, $2, $3, $4, 'available', $5, (SELECT id FROM categories WHERE name = $6))
			ON CONFLICT (serial_number) DO NOTHING`,
			e.Name, e.Brand, e.Model, e.Serial, e.Condition, e.Category,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
