package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"equipment-system/internal/dto"
	"equipment-system/pkg/constants"
)

// EquipmentImportService загружает реестр оборудования из Excel-файла.
// Шапка таблицы ищется по всему файлу: инвентаризационные выгрузки
// часто начинаются с пояснительных строк.
type EquipmentImportService struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewEquipmentImportService(db *pgxpool.Pool, logger *zap.Logger) *EquipmentImportService {
	return &EquipmentImportService{db: db, logger: logger}
}

type importColumns struct {
	name     int
	brand    int
	model    int
	serial   int
	category int
}

func (s *EquipmentImportService) ImportFromFile(ctx context.Context, filePath string) (*dto.ImportEquipmentResultDTO, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer f.Close()

	var finalRows [][]string
	cols := importColumns{name: -1, brand: -1, model: -1, serial: -1, category: -1}
	headerFoundRow := -1

	for _, sheet := range f.GetSheetList() {
		rows, _ := f.GetRows(sheet)
		for rIdx, row := range rows {
			rowStr := strings.ToLower(strings.Join(row, "|"))

			hasName := strings.Contains(rowStr, "наименование") || strings.Contains(rowStr, "название") || strings.Contains(rowStr, "name")
			hasSerial := strings.Contains(rowStr, "серийн") || strings.Contains(rowStr, "serial")

			if hasName && hasSerial {
				for cIdx, colName := range row {
					cLower := strings.ToLower(strings.TrimSpace(colName))

					switch {
					case strings.Contains(cLower, "наименование") || strings.Contains(cLower, "название") || cLower == "name":
						cols.name = cIdx
					case strings.Contains(cLower, "бренд") || strings.Contains(cLower, "производител") || strings.Contains(cLower, "brand"):
						cols.brand = cIdx
					case strings.Contains(cLower, "модель") || strings.Contains(cLower, "model"):
						cols.model = cIdx
					case strings.Contains(cLower, "серийн") || strings.Contains(cLower, "serial"):
						cols.serial = cIdx
					case strings.Contains(cLower, "категор") || strings.Contains(cLower, "тип") || strings.Contains(cLower, "category"):
						cols.category = cIdx
					}
				}

				if cols.name != -1 && cols.serial != -1 {
					finalRows = rows
					headerFoundRow = rIdx
					s.logger.Info("Шапка таблицы найдена",
						zap.String("sheet", sheet),
						zap.Int("row", rIdx+1),
					)
					break
				}
			}
		}
		if headerFoundRow != -1 {
			break
		}
	}

	if headerFoundRow == -1 {
		return nil, fmt.Errorf("не найдена шапка таблицы: нужны колонки 'Наименование' и 'Серийный номер'")
	}

	categories, err := s.loadCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := &dto.ImportEquipmentResultDTO{}

	for i := headerFoundRow + 1; i < len(finalRows); i++ {
		row := finalRows[i]
		lineNum := i + 1

		name := safeGet(row, cols.name)
		serial := safeGet(row, cols.serial)
		if name == "" || serial == "" {
			continue
		}
		if isTrashRow(name) {
			continue
		}

		brand := safeGet(row, cols.brand)
		model := safeGet(row, cols.model)
		categoryName := safeGet(row, cols.category)

		var categoryID interface{}
		if categoryName != "" {
			if id := fuzzyFindCategory(categoryName, categories); id > 0 {
				categoryID = id
			} else {
				s.logger.Warn("Категория из файла не найдена, привязка пропущена",
					zap.Int("line", lineNum),
					zap.String("category", categoryName),
				)
			}
		}

		query := `
            INSERT INTO equipments (name, brand, model, serial_number, status, condition, category_id)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
            ON CONFLICT (serial_number)
            DO UPDATE SET
                name = EXCLUDED.name,
                brand = COALESCE(NULLIF(EXCLUDED.brand, ''), equipments.brand),
                model = COALESCE(NULLIF(EXCLUDED.model, ''), equipments.model),
                category_id = COALESCE(EXCLUDED.category_id, equipments.category_id),
                updated_at = CURRENT_TIMESTAMP
            RETURNING (xmax = 0) AS is_insert`

		var isInsert bool
		err := s.db.QueryRow(ctx, query,
			name, brand, model, serial,
			constants.EquipmentStatusAvailable,
			constants.EquipmentConditionGood,
			categoryID,
		).Scan(&isInsert)
		if err != nil {
			s.logger.Error("Ошибка импорта строки",
				zap.Int("line", lineNum),
				zap.String("name", name),
				zap.Error(err),
			)
			result.Errors++
			continue
		}

		if isInsert {
			result.Created++
		} else {
			result.Updated++
		}
	}

	s.logger.Info("Импорт оборудования завершён",
		zap.String("file", filePath),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("errors", result.Errors),
	)

	return result, nil
}

type categoryRef struct {
	ID   uint64
	Name string
}

func (s *EquipmentImportService) loadCategories(ctx context.Context) ([]categoryRef, error) {
	rows, err := s.db.Query(ctx, "SELECT id, name FROM categories")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []categoryRef
	for rows.Next() {
		var c categoryRef
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func fuzzyFindCategory(excelName string, categories []categoryRef) uint64 {
	cleanExcel := cleanImportString(excelName)
	if cleanExcel == "" {
		return 0
	}
	for _, c := range categories {
		cleanDB := cleanImportString(c.Name)
		if cleanDB == cleanExcel || strings.Contains(cleanDB, cleanExcel) || strings.Contains(cleanExcel, cleanDB) {
			return c.ID
		}
	}
	return 0
}

func cleanImportString(in string) string {
	replacer := strings.NewReplacer(
		"\"", "",
		"«", "",
		"»", "",
		" ", "",
		".", "",
		"-", "",
	)
	return strings.TrimSpace(replacer.Replace(strings.ToLower(in)))
}

func isTrashRow(val string) bool {
	v := strings.ToLower(strings.TrimSpace(val))
	if v == "" {
		return true
	}
	return strings.Contains(v, "итого") || strings.Contains(v, "всего")
}

func safeGet(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
