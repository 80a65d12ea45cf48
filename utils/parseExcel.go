package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"roomplanner/models"
)

// 表头别名, all lowercase
var headerAliases = map[string][]string{
	"name":     {"name", "item", "label", "furniture", "product"},
	"category": {"category", "type", "kind"},
	"width":    {"width", "w", "x"},
	"depth":    {"depth", "d", "y"},
	"price":    {"price", "cost", "usd"},
	"size":     {"size", "dimensions", "dims", "remark"},
}

var sizePattern = regexp.MustCompile(`(\d+(\.\d+)?)\s*[×xX*-]\s*(\d+(\.\d+)?)`)

// extractSize 支持 2.0x0.9、2*0.9、2.0×0.9、2 x 0.9m 等格式
func extractSize(text string) (float64, float64, bool) {
	match := sizePattern.FindStringSubmatch(text)
	if len(match) >= 4 {
		width, _ := strconv.ParseFloat(match[1], 64)
		depth, _ := strconv.ParseFloat(match[3], 64)
		return width, depth, true
	}
	return 0, 0, false
}

func parsePrice(text string) (int, bool) {
	text = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), "$"))
	text = strings.ReplaceAll(text, ",", "")
	if n, err := strconv.Atoi(text); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return int(math.Round(f)), true
	}
	return 0, false
}

func parseMeters(text string) (float64, bool) {
	text = strings.TrimSuffix(strings.TrimSpace(strings.ToLower(text)), "m")
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	return f, err == nil
}

// detectColumns 找出各列位置, -1 when absent
func detectColumns(header []string) map[string]int {
	cols := map[string]int{}
	for role := range headerAliases {
		cols[role] = -1
	}
	for i, val := range header {
		val = strings.ToLower(strings.TrimSpace(val))
		for role, aliases := range headerAliases {
			if cols[role] != -1 {
				continue
			}
			for _, alias := range aliases {
				if val == alias {
					cols[role] = i
					break
				}
			}
		}
	}
	return cols
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ReadCatalogExcel reads furniture from the first sheet of an .xlsx file.
// Rows that cannot become an item are skipped and reported in the returned
// warnings. Row order is kept.
func ReadCatalogExcel(filePath string) ([]models.FurnitureItem, []string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return readCatalogRows(rows)
}

func readCatalogRows(rows [][]string) ([]models.FurnitureItem, []string, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("catalog sheet is empty")
	}

	cols := detectColumns(rows[0])
	var missing []string
	for _, role := range []string{"name", "category", "price"} {
		if cols[role] == -1 {
			missing = append(missing, role)
		}
	}
	if (cols["width"] == -1 || cols["depth"] == -1) && cols["size"] == -1 {
		missing = append(missing, "width/depth or size")
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("找不到表头列：%s", strings.Join(missing, ", "))
	}

	var (
		result   []models.FurnitureItem
		warnings []string
	)
	for i, row := range rows[1:] {
		line := i + 2
		name := cell(row, cols["name"])
		category := cell(row, cols["category"])
		if name == "" && category == "" {
			continue
		}
		if category == "" {
			warnings = append(warnings, fmt.Sprintf("Row %d: %q has no category, skipped", line, name))
			continue
		}

		width, okW := parseMeters(cell(row, cols["width"]))
		depth, okD := parseMeters(cell(row, cols["depth"]))
		if !okW || !okD {
			width, depth, okW = extractSize(cell(row, cols["size"]))
			okD = okW
		}
		if !okW || !okD || width <= 0 || depth <= 0 {
			warnings = append(warnings, fmt.Sprintf("Row %d: %q has no usable dimensions, skipped", line, name))
			continue
		}

		price, ok := parsePrice(cell(row, cols["price"]))
		if !ok || price < 0 {
			warnings = append(warnings, fmt.Sprintf("Row %d: %q has no usable price, skipped", line, name))
			continue
		}

		result = append(result, models.FurnitureItem{
			Name:     name,
			Category: strings.ToLower(category),
			Width:    width,
			Depth:    depth,
			Price:    price,
		})
	}
	return result, warnings, nil
}
