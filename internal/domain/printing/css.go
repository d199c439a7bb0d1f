package printing

import (
	"fmt"

	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
)

// pageCSS строит встраиваемый стиль печатной формы из типографики шаблона.
// Вторичные размеры (шапка таблицы, подписи мелким шрифтом) выводятся из
// основного фиксированными смещениями: −1, −2, −3.
func pageCSS(tpl entity.TemplateSettings) string {
	return fmt.Sprintf(`
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: '%s', serif; font-size: %dpx; color: #000; padding: %dmm; line-height: 1.3; }
  table { width: 100%%; border-collapse: collapse; }
  .bordered td, .bordered th { border: 1px solid #000; padding: 3px 5px; font-size: %dpx; }
  .bordered th { background: %s; font-weight: bold; text-align: center; font-size: %dpx; }
  .right { text-align: right; }
  .center { text-align: center; }
  .bold { font-weight: bold; }
  .title { font-size: %dpx; font-weight: bold; text-align: center; margin: 8px 0; }
  .subtitle { font-size: %dpx; text-align: center; margin-bottom: 10px; }
  .bank-block { margin-bottom: 10px; }
  .bank-block td { padding: 2px 5px; font-size: %dpx; vertical-align: top; }
  .bank-block .header-cell { font-size: %dpx; color: #666; }
  .sign-block { margin-top: 20px; }
  .sign-block td { padding: 4px 0; border: none; vertical-align: bottom; }
  .sign-line { border-bottom: 1px solid #000; min-width: 150px; display: inline-block; }
  .small { font-size: %dpx; color: #666; }
  .qr-block { margin-top: 15px; display: flex; align-items: flex-start; gap: 10px; }
  .qr-block img { width: 120px; height: 120px; }
  hr.thick { border: none; border-top: 2px solid #000; margin: 2px 0; }
  hr.thin { border: none; border-top: 1px solid #000; margin: 1px 0; }
  .totals-row td { border: none !important; padding: 2px 5px; font-size: %dpx; }
  .logo { max-height: 50px; margin-bottom: 5px; }
  .header-text { font-size: %dpx; color: #333; margin-bottom: 8px; white-space: pre-line; }
  .footer-text { font-size: %dpx; color: #666; margin-top: 15px; border-top: 1px solid #ccc; padding-top: 8px; white-space: pre-line; }
  @media print { body { padding: 5mm; } }
  @page { size: A4; margin: 10mm; }
`,
		tpl.Font, tpl.FontSize, tpl.PageMargin,
		tpl.FontSize-1,
		tpl.TableHeaderBg, tpl.FontSize-2,
		tpl.TitleFontSize,
		tpl.FontSize,
		tpl.FontSize-1,
		tpl.FontSize-3,
		tpl.FontSize-3,
		tpl.FontSize-1,
		tpl.FontSize-1,
		tpl.FontSize-2,
	)
}
