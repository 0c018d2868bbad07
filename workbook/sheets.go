package workbook

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/gregkash16/ncx-sub000/model"
)

const callTimeout = 10 * time.Second

type sheetsClient struct {
	svc     *sheets.Service
	sheetID string
}

// New builds the production workbook client authenticated with a service
// account.
func New(ctx context.Context, sheetID string, credentialsJSON []byte) (Workbook, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("error creating sheets service: %w", err)
	}
	return &sheetsClient{svc: svc, sheetID: sheetID}, nil
}

// NewForTest points the client at a fake Sheets server.
func NewForTest(ctx context.Context, url, sheetID string) (Workbook, error) {
	svc, err := sheets.NewService(ctx,
		option.WithEndpoint(url),
		option.WithoutAuthentication())
	if err != nil {
		return nil, fmt.Errorf("error creating sheets service: %w", err)
	}
	return &sheetsClient{svc: svc, sheetID: sheetID}, nil
}

func (c *sheetsClient) GetRange(ctx context.Context, a1 string) ([][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var resp *sheets.ValueRange
	err := withRetry(ctx, func() error {
		var err error
		resp, err = c.svc.Spreadsheets.Values.Get(c.sheetID, a1).
			ValueRenderOption("FORMATTED_VALUE").
			Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error reading range %s: %w", a1, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, r := range resp.Values {
		row := make([]string, 0, len(r))
		for _, v := range r {
			row = append(row, fmt.Sprint(v))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *sheetsClient) BatchWrite(ctx context.Context, writes []CellWrite) error {
	if len(writes) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	data := make([]*sheets.ValueRange, 0, len(writes))
	for _, w := range writes {
		data = append(data, &sheets.ValueRange{
			Range:  w.A1,
			Values: [][]any{{w.Value}},
		})
	}
	req := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}

	err := withRetry(ctx, func() error {
		_, err := c.svc.Spreadsheets.Values.BatchUpdate(c.sheetID, req).Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("error writing %d cells: %w", len(writes), err)
	}
	return nil
}

func (c *sheetsClient) UpsertListLink(ctx context.Context, week string, game int, side model.Side, url string) error {
	rows, err := c.GetRange(ctx, ListsRange)
	if err != nil {
		return fmt.Errorf("error reading lists range: %w", err)
	}

	for i, row := range rows {
		if Cell(row, 0) != week {
			continue
		}
		g := CellInt(Cell(row, 1))
		if g == nil || *g != game || Cell(row, 2) != string(side) {
			continue
		}
		// Row i of the range is sheet row i+2.
		cell := fmt.Sprintf("LISTS!D%d", i+2)
		return c.BatchWrite(ctx, []CellWrite{{A1: cell, Value: url}})
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	vr := &sheets.ValueRange{
		Values: [][]any{{week, strconv.Itoa(game), string(side), url}},
	}
	err = withRetry(ctx, func() error {
		_, err := c.svc.Spreadsheets.Values.Append(c.sheetID, ListsRange, vr).
			ValueInputOption("USER_ENTERED").
			InsertDataOption("INSERT_ROWS").
			Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("error appending list row: %w", err)
	}
	return nil
}

func (c *sheetsClient) FormatScoreCells(ctx context.Context, week string, rowIdx int) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	gid, err := c.sheetGID(ctx, week)
	if err != nil {
		return err
	}

	row := int64(SheetRow(rowIdx))
	// Away points live in column F (index 5), home points in I (index 8).
	reqs := make([]*sheets.Request, 0, 2)
	for _, col := range []int64{5, 8} {
		reqs = append(reqs, &sheets.Request{
			RepeatCell: &sheets.RepeatCellRequest{
				Range: &sheets.GridRange{
					SheetId:          gid,
					StartRowIndex:    row - 1,
					EndRowIndex:      row,
					StartColumnIndex: col,
					EndColumnIndex:   col + 1,
				},
				Cell: &sheets.CellData{
					UserEnteredFormat: &sheets.CellFormat{
						NumberFormat: &sheets.NumberFormat{Type: "NUMBER", Pattern: "0"},
					},
				},
				Fields: "userEnteredFormat.numberFormat",
			},
		})
	}

	err = withRetry(ctx, func() error {
		_, err := c.svc.Spreadsheets.BatchUpdate(c.sheetID,
			&sheets.BatchUpdateSpreadsheetRequest{Requests: reqs}).
			Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("error formatting score cells: %w", err)
	}
	return nil
}

func (c *sheetsClient) sheetGID(ctx context.Context, title string) (int64, error) {
	var ss *sheets.Spreadsheet
	err := withRetry(ctx, func() error {
		var err error
		ss, err = c.svc.Spreadsheets.Get(c.sheetID).
			Fields("sheets.properties").
			Context(ctx).Do()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("error loading sheet properties: %w", err)
	}
	for _, s := range ss.Sheets {
		if s.Properties != nil && s.Properties.Title == title {
			return s.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("no sheet named %s", title)
}
