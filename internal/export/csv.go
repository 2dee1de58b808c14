package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ProductsCSV writes the catalog in the same column layout as the Excel
// export, for shops that live in plain text.
func (e *Exporter) ProductsCSV(w io.Writer) error {
	products, err := e.store.ListProducts()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(productHeaders); err != nil {
		return err
	}
	for _, p := range products {
		record := []string{
			p.Code, p.Name, p.Category,
			fmt.Sprintf("%.2f", p.UnitCost), "",
			fmt.Sprintf("%.2f", p.SalePrice),
			fmt.Sprintf("%d", p.Stock),
			fmt.Sprintf("%d", p.UnitsPerBulk),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportProductsCSV reads the ProductsCSV layout back into the catalog.
// The first record is assumed to be the header row.
func (e *Exporter) ImportProductsCSV(r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows, same as the Excel path

	records, err := cr.ReadAll()
	if err != nil {
		return 0, err
	}
	if len(records) < 2 {
		return 0, nil
	}

	imported := 0
	for _, record := range records[1:] {
		if err := e.importRow(record); err != nil {
			return imported, err
		} else if len(record) >= 2 && record[0] != "" && record[1] != "" {
			imported++
		}
	}
	return imported, nil
}
