package mockworkbook

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gregkash16/ncx-sub000/model"
	"github.com/gregkash16/ncx-sub000/workbook"
)

type Workbook struct {
	mock.Mock
}

func (w *Workbook) GetRange(ctx context.Context, a1 string) ([][]string, error) {
	args := w.Called(ctx, a1)

	var rows [][]string
	if args.Get(0) != nil {
		rows = args.Get(0).([][]string)
	}
	return rows, args.Error(1)
}

func (w *Workbook) BatchWrite(ctx context.Context, writes []workbook.CellWrite) error {
	args := w.Called(ctx, writes)
	return args.Error(0)
}

func (w *Workbook) UpsertListLink(ctx context.Context, week string, game int, side model.Side, url string) error {
	args := w.Called(ctx, week, game, side, url)
	return args.Error(0)
}

func (w *Workbook) FormatScoreCells(ctx context.Context, week string, rowIdx int) error {
	args := w.Called(ctx, week, rowIdx)
	return args.Error(0)
}
