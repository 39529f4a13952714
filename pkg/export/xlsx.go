// Package export writes a parsed deal catalog as a shopping-list workbook,
// one sheet per document section.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nointernetrex/publix-deals/pkg/catalog"
)

// Sheet names, in workbook order.
const (
	SheetTripleStacks   = "Triple Stacks"
	SheetDoubleStacks   = "Double Stacks"
	SheetBogoDeals      = "BOGO Deals"
	SheetDigitalCoupons = "Digital Coupons"
)

// itemSeparator joins multi-item stack fields into one cell.
const itemSeparator = "; "

// Workbook builds the shopping-list workbook in memory.
func Workbook(c *catalog.Catalog) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeStackSheet(f, SheetTripleStacks, c.TripleStacks); err != nil {
		return nil, err
	}
	if err := writeStackSheet(f, SheetDoubleStacks, c.DoubleStacks); err != nil {
		return nil, err
	}
	if err := writeBogoSheet(f, c.BogoDeals); err != nil {
		return nil, err
	}
	if err := writeCouponSheet(f, c.DigitalCoupons); err != nil {
		return nil, err
	}

	// Drop the default sheet excelize creates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	if idx, err := f.GetSheetIndex(SheetTripleStacks); err == nil {
		f.SetActiveSheet(idx)
	}

	return f, nil
}

// WriteFile builds the workbook and saves it to path.
func WriteFile(c *catalog.Catalog, path string) error {
	f, err := Workbook(c)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeStackSheet(f *excelize.File, sheet string, deals []catalog.StackDeal) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	header := []string{"Deal", "Sale", "Digital Coupons", "Buy", "Why This Works"}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, deal := range deals {
		row := []string{
			deal.Name,
			strings.Join(deal.Sale, itemSeparator),
			strings.Join(deal.Coupons, itemSeparator),
			strings.Join(deal.Buy, itemSeparator),
			deal.Why,
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	return nil
}

func writeBogoSheet(f *excelize.File, list *catalog.CategoryList) error {
	if _, err := f.NewSheet(SheetBogoDeals); err != nil {
		return fmt.Errorf("create sheet %s: %w", SheetBogoDeals, err)
	}

	if err := writeRow(f, SheetBogoDeals, 1, []string{"Category", "Item", "Offer", "Savings", "Valid"}); err != nil {
		return err
	}

	row := 2
	for _, category := range list.Categories() {
		for _, line := range list.Lines(category) {
			item := line.SplitBogo()
			cells := []string{category, item.Name, item.Offer, item.Savings, item.Valid}
			if err := writeRow(f, SheetBogoDeals, row, cells); err != nil {
				return err
			}
			row++
		}
	}

	return nil
}

func writeCouponSheet(f *excelize.File, list *catalog.CategoryList) error {
	if _, err := f.NewSheet(SheetDigitalCoupons); err != nil {
		return fmt.Errorf("create sheet %s: %w", SheetDigitalCoupons, err)
	}

	if err := writeRow(f, SheetDigitalCoupons, 1, []string{"Category", "Brand", "Savings", "Description", "Expires"}); err != nil {
		return err
	}

	row := 2
	for _, category := range list.Categories() {
		for _, line := range list.Lines(category) {
			item := line.SplitCoupon()
			cells := []string{category, item.Name, item.Savings, item.Description, item.Expires}
			if err := writeRow(f, SheetDigitalCoupons, row, cells); err != nil {
				return err
			}
			row++
		}
	}

	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []string) error {
	for col, value := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("set cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
