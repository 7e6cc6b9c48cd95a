package gridcrawl

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/ukaji3/gridcrawl-go/pkg/gridcrawl/detector"
	"github.com/ukaji3/gridcrawl-go/pkg/gridcrawl/models"
	"github.com/ukaji3/gridcrawl-go/pkg/gridcrawl/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Crawl detects the grids of the selected sheets of an xlsx file.
func Crawl(path string, opts Options) (*models.WorkbookGrids, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return CrawlFile(f, filepath.Base(path), opts)
}

// CrawlFile detects the grids of the selected sheets of an open workbook.
// Each sheet is crawled by its own detector. The first failing sheet
// aborts the call with a *CrawlError.
func CrawlFile(f *excelize.File, bookName string, opts Options) (*models.WorkbookGrids, error) {
	log := opts.logger().With(zap.String("crawl_id", uuid.NewString()), zap.String("book", bookName))

	sheetList := f.GetSheetList()
	for _, name := range opts.Sheets {
		if !contains(sheetList, name) {
			return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
		}
	}

	var window *models.PrintArea
	if opts.Range != "" {
		area, err := parser.ParseRange(opts.Range)
		if err != nil {
			return nil, err
		}
		window = &area
	}

	var printAreas map[string][]models.PrintArea
	if window == nil && opts.UsePrintAreas {
		var err error
		printAreas, err = parser.ExtractPrintAreas(f)
		if err != nil {
			fields := []zap.Field{zap.Error(err)}
			var areaErr *parser.PrintAreaError
			if errors.As(err, &areaErr) {
				fields = append(fields, zap.String("sheet", areaErr.Sheet))
			}
			log.Warn("print area unreadable, crawling the whole sheet", fields...)
		}
	}

	wb := &models.WorkbookGrids{
		BookName: bookName,
		Sheets:   make(map[string]models.SheetGrids),
	}

	for _, sheetName := range sheetList {
		if !opts.wantsSheet(sheetName) {
			continue
		}

		area := window
		if areas := printAreas[sheetName]; len(areas) > 0 {
			area = &areas[0]
			if len(areas) > 1 {
				log.Info("sheet has several print areas, crawling the first",
					zap.String("sheet", sheetName), zap.Int("areas", len(areas)))
			}
		}

		sheet, err := crawlSheet(f, sheetName, area, opts, log.With(zap.String("sheet", sheetName)))
		if err != nil {
			return nil, NewCrawlError(sheetName, err)
		}
		wb.Sheets[sheetName] = *sheet
		wb.SheetOrder = append(wb.SheetOrder, sheetName)
	}

	return wb, nil
}

func crawlSheet(f *excelize.File, sheetName string, area *models.PrintArea, opts Options, log *zap.Logger) (*models.SheetGrids, error) {
	src, err := parser.NewSheetSource(f, sheetName)
	if err != nil {
		return nil, err
	}

	var cells detector.CellSource = src
	if area != nil {
		cells = parser.NewWindowSource(src, *area)
	}

	d := detector.New(
		detector.WithLogger(log),
		detector.WithMetrics(opts.Metrics),
		detector.WithStaggerPolicy(opts.Stagger),
	)
	d.Load(cells)
	if err := d.Crawl(); err != nil {
		return nil, err
	}

	grids, err := d.Raw()
	if err != nil {
		return nil, err
	}
	stats := d.Stats()
	log.Info("sheet crawled", zap.Int("grids", stats.Grids), zap.Int("cells", stats.Cells))

	return &models.SheetGrids{
		Grids:  grids,
		Window: area,
		Stats:  stats,
	}, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
