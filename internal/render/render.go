package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"math"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"franceMiningCounter/internal/domain"
	"franceMiningCounter/internal/ports"
	"franceMiningCounter/internal/reward"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

// Page variants, mirrored from the configuration.
const (
	VariantSelectable = "selectable"
	VariantFixed      = "fixed"
)

// Price endpoint flavours understood by the page script.
const (
	PriceKindCoinGecko = "coingecko"
	PriceKindBinance   = "binance"
)

// Endpoints are the URLs the page polls from the browser.
type Endpoints struct {
	BlockHeight string `json:"blockHeight"`
	SpotPrice   string `json:"spotPrice"`
	PriceKind   string `json:"priceKind"`
	HashRate    string `json:"hashRate"`
}

// Options carry the page settings that are not part of the result record.
type Options struct {
	Variant          string
	ShareChoices     []int
	Schedule         reward.Schedule
	RefreshInterval  time.Duration
	EfficiencyJPerTH float64
	Endpoints        Endpoints
}

// ShareOption is one entry of the share dropdown.
type ShareOption struct {
	Value    int
	Selected bool
}

// Display holds the French-formatted initial counter texts.
type Display struct {
	TotalEuros string
	FranceBTC  string
	Price      string
	Blocks     string
	MW         string
	Share      string
}

// Page is the data bound to the template.
type Page struct {
	Selectable       bool
	Result           domain.Result
	SharePercent     float64
	ShareOptions     []ShareOption
	Schedule         reward.Schedule
	RefreshMs        int64
	RefreshMinutes   int64
	EfficiencyJPerTH float64
	Endpoints        Endpoints
	Display          Display
}

// Renderer turns a result record into the standalone counter page.
type Renderer struct {
	tmpl    *template.Template
	printer *message.Printer
}

// New parses the embedded page template.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("%w: parsing template: %w", ports.ErrRenderFailed, err)
	}
	return &Renderer{
		tmpl:    tmpl,
		printer: message.NewPrinter(language.French),
	}, nil
}

// NewPage binds a result and its options into template data.
func (r *Renderer) NewPage(res domain.Result, opts Options) Page {
	schedule := opts.Schedule
	if schedule == nil {
		schedule = reward.DefaultSchedule
	}
	sharePercent := Percent(res.Share)

	var options []ShareOption
	if opts.Variant != VariantFixed {
		options = make([]ShareOption, 0, len(opts.ShareChoices))
		for _, c := range opts.ShareChoices {
			options = append(options, ShareOption{Value: c, Selected: float64(c) == sharePercent})
		}
	}

	hist := res.HistPoints
	if hist == nil {
		hist = []domain.Point{}
	}
	res.HistPoints = hist

	return Page{
		Selectable:       opts.Variant != VariantFixed,
		Result:           res,
		SharePercent:     sharePercent,
		ShareOptions:     options,
		Schedule:         schedule,
		RefreshMs:        opts.RefreshInterval.Milliseconds(),
		RefreshMinutes:   int64(opts.RefreshInterval / time.Minute),
		EfficiencyJPerTH: opts.EfficiencyJPerTH,
		Endpoints:        opts.Endpoints,
		Display: Display{
			TotalEuros: r.printer.Sprintf("%d €", res.TotalEuros),
			FranceBTC:  r.printer.Sprintf("%d BTC", int64(res.FranceBTC)),
			Price:      r.printer.Sprintf("%.2f €", res.PriceEUR),
			Blocks:     r.printer.Sprintf("%d", res.Blocks),
			MW:         r.printer.Sprintf("%d MW", int64(res.TotalMW*res.Share)),
			Share:      r.printer.Sprintf("%v %%", sharePercent),
		},
	}
}

// Percent converts a share to a percentage, dropping float noise such as
// 0.03*100 = 3.0000000000000004.
func Percent(share float64) float64 {
	return math.Round(share*1e8) / 1e6
}

// Render writes the page to w.
func (r *Renderer) Render(w io.Writer, page Page) error {
	if err := r.tmpl.Execute(w, page); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrRenderFailed, err)
	}
	return nil
}

// WriteFile renders the page fully in memory, then writes it to path.
func (r *Renderer) WriteFile(path string, page Page) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, page); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: '%s': %w", ports.ErrWriteFailed, path, err)
	}
	return nil
}

// Summary is the completion line printed once the page is written.
func (r *Renderer) Summary(path string, res domain.Result) string {
	return r.printer.Sprintf("Fichier %s généré ! %.2f BTC manqués, soit %d € au prix de %.2f € (part de %v %%).",
		path, res.FranceBTC, res.TotalEuros, res.PriceEUR, Percent(res.Share))
}
