package results

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/autoweb/autoweb/internal/common/clock"
	"github.com/autoweb/autoweb/pkg/config"
	"github.com/autoweb/autoweb/pkg/models"
)

//go:embed report.html.tmpl
var reportTmpl string

var (
	reportTemplate = template.Must(template.New("report").Funcs(sprig.HtmlFuncMap()).Parse(reportTmpl))

	exportHeader = []string{"name", "type", "status", "detail", "instance_id", "duration_seconds", "timestamp"}

	contentTypes = map[config.ExportFormat]string{
		config.ExportJSON: "application/json",
		config.ExportCSV:  "text/csv",
		config.ExportHTML: "text/html; charset=utf-8",
		config.ExportXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}
)

const xlsxSheet = "Results"

// Exporter renders the result log into a downloadable document and keeps
// a copy under the configured results directory.
type Exporter interface {
	Export(format config.ExportFormat) (string, []byte, error)
	ContentType(format config.ExportFormat) string
}

type ExportService struct {
	log        ResultLog
	fs         afero.Fs
	resultsDir string
	now        clock.NowFunc
	l          *zap.SugaredLogger
}

func NewExportService(log ResultLog, fs afero.Fs, cfg config.StorageConfig, now clock.NowFunc, l *zap.Logger) *ExportService {
	return &ExportService{
		log:        log,
		fs:         fs,
		resultsDir: cfg.ResultsDir(),
		now:        now,
		l:          l.Sugar(),
	}
}

func (e *ExportService) Export(format config.ExportFormat) (string, []byte, error) {
	if !config.ValidExportFormat(format) {
		return "", nil, models.NewBadRequestError(errors.Errorf("unsupported export format %q", format))
	}

	data, err := e.render(format)
	if err != nil {
		return "", nil, errors.Wrapf(err, "failed to render %s export", format)
	}

	filename := fmt.Sprintf("results_%s.%s", e.now().Format("20060102_150405"), format)
	if err := e.save(filename, data); err != nil {
		return "", nil, errors.Wrap(err, "failed to save export file")
	}

	e.l.Infow("results exported",
		zap.String("format", string(format)),
		zap.String("filename", filename),
		zap.Int("size", len(data)),
	)
	return filename, data, nil
}

func (e *ExportService) ContentType(format config.ExportFormat) string {
	return contentTypes[format]
}

func (e *ExportService) save(filename string, data []byte) error {
	if err := e.fs.MkdirAll(e.resultsDir, 0o755); err != nil {
		return err
	}
	return afero.WriteFile(e.fs, filepath.Join(e.resultsDir, filename), data, 0o644)
}

func (e *ExportService) render(format config.ExportFormat) ([]byte, error) {
	res := e.log.List()
	switch format {
	case config.ExportJSON:
		return json.MarshalIndent(res, "", "  ")
	case config.ExportCSV:
		return renderCSV(res)
	case config.ExportHTML:
		return e.renderHTML(res)
	case config.ExportXLSX:
		return renderXLSX(res)
	}
	return nil, errors.Errorf("unsupported export format %q", format)
}

func renderCSV(res []models.Result) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, r := range res {
		rec := []string{
			r.Name,
			string(r.Type),
			string(r.Status),
			r.Detail,
			r.InstanceID,
			strconv.FormatFloat(r.Duration, 'f', 3, 64),
			r.Timestamp.Format(time.RFC3339),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (e *ExportService) renderHTML(res []models.Result) ([]byte, error) {
	var buf bytes.Buffer
	err := reportTemplate.Execute(&buf, struct {
		GeneratedAt time.Time
		Stats       Stats
		Results     []models.Result
	}{
		GeneratedAt: e.now(),
		Stats:       e.log.Stats(),
		Results:     res,
	})
	return buf.Bytes(), err
}

func renderXLSX(res []models.Result) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, r := range res {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			r.Name,
			string(r.Type),
			string(r.Status),
			r.Detail,
			r.InstanceID,
			r.Duration,
			r.Timestamp.Format(time.RFC3339),
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
