package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"equipment-system/pkg/utils"
)

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Создание пользователя 'Admin'...")

	email := "admin@example.com"

	var userID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	if err == nil {
		log.Println("    - Пользователь Admin уже существует. Пропускаем.")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("ошибка при проверке существования пользователя: %w", err)
	}

	hashedPassword, err := utils.HashPassword("admin")
	if err != nil {
		return err
	}

	err = db.QueryRow(ctx,
		`INSERT INTO users (fio, email, password) VALUES ($1, $2, $3) RETURNING id`,
		"Администратор системы", email, hashedPassword,
	).Scan(&userID)
	if err != nil {
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	log.Printf("    - Пользователь Admin создан (id=%d).", userID)
	return nil
}
