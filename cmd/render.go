package cmd

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/liangshaojie/portfolio/dom"
	"github.com/liangshaojie/portfolio/i18n"
	"github.com/liangshaojie/portfolio/prefs"
	"github.com/liangshaojie/portfolio/site"
	"github.com/liangshaojie/portfolio/timing"
	"github.com/liangshaojie/portfolio/web"
)

//nolint:gochecknoglobals // Cobra boilerplate
var renderOut string

//nolint:gochecknoglobals // Cobra boilerplate
var renderLang string

//nolint:gochecknoglobals // Cobra boilerplate
var renderTheme string

//nolint:gochecknoglobals // Cobra boilerplate
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write pre-rendered pages for static hosting",
	Long: `Render the page once per language into <out>/<lang>/index.html and copy
the static assets to <out>/static. The language switch on each page links to
the other language's copy.

Example:
  portfolio render --out public
  portfolio render --out public --lang en --theme dark`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&renderOut, "out", "", "Output directory")
	renderCmd.Flags().StringVar(&renderLang, "lang", "", "Only render this language (zh or en)")
	renderCmd.Flags().StringVar(&renderTheme, "theme", string(prefs.Light), "Theme to render (light or dark)")
	_ = renderCmd.MarkFlagRequired("out")
}

func runRender(_ *cobra.Command, _ []string) (err error) {
	_, logger, err := loadConfig()
	if err != nil {
		return err
	}

	langs := i18n.SupportedLanguages()
	if renderLang != "" {
		lang, ok := i18n.ParseLang(renderLang)
		if !ok {
			err = errors.Errorf("unknown language %q (want zh or en)", renderLang)
			return err
		}
		langs = []i18n.Lang{lang}
	}
	theme, ok := prefs.ParseTheme(renderTheme)
	if !ok {
		err = errors.Errorf("unknown theme %q (want light or dark)", renderTheme)
		return err
	}

	err = renderSite(renderOut, langs, theme, logger)
	return err
}

func renderSite(out string, langs []i18n.Lang, theme prefs.Theme, logger *slog.Logger) error {
	for _, lang := range langs {
		page, err := renderPage(lang, theme, logger)
		if err != nil {
			return errors.Wrapf(err, "rendering %s", lang)
		}
		path := filepath.Join(out, string(lang), "index.html")
		if err := writeFile(path, page); err != nil {
			return err
		}
		logger.Info("rendered page", "path", path)
	}
	return copyStatic(filepath.Join(out, "static"))
}

func renderPage(lang i18n.Lang, theme prefs.Theme, logger *slog.Logger) ([]byte, error) {
	doc, err := dom.ParseBytes(web.Index)
	if err != nil {
		return nil, errors.Wrap(err, "parsing page")
	}

	store := prefs.NewMemoryStore()
	if err := store.Set(prefs.KeyLanguage, string(lang)); err != nil {
		return nil, err
	}
	if err := store.Set(prefs.KeyTheme, string(theme)); err != nil {
		return nil, err
	}

	w := site.New(doc, site.Options{
		Store:     store,
		Scheduler: timing.NewManual(),
		Logger:    logger,
	})
	w.Init()

	// static copies have no /language endpoint; link to the sibling page
	w.Inspect(func(doc *dom.Document) {
		form := doc.ByID("langToggle").Closest(dom.Tag("form"))
		form.SetAttr("method", "get")
		form.SetAttr("action", "../"+string(i18n.OtherLang(lang))+"/")
	})

	var buf bytes.Buffer
	if err := w.Render(&buf); err != nil {
		return nil, errors.Wrap(err, "rendering page")
	}
	return buf.Bytes(), nil
}

func copyStatic(dest string) error {
	static := web.Static()
	return fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(static, path)
		if err != nil {
			return errors.Wrapf(err, "reading %s", path)
		}
		return writeFile(filepath.Join(dest, filepath.FromSlash(path)), data)
	})
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", filepath.Dir(path))
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "writing %s", path)
}
