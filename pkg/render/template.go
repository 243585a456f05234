package render

import (
	"bytes"
	"fmt"
	"html/template"
	texttemplate "text/template"

	"github.com/mailwright/mailwright/pkg/brand"
)

// layoutData feeds the branded layout template.
type layoutData struct {
	Brand     brand.Config
	Subject   string
	Preheader string
	BodyHTML  string
	CTAText   string
	CTAURL    string
	Purpose   string
}

// layout is the single generic email layout: hidden preheader, optional
// logo, rendered body, optional CTA button, signature and footer blocks.
// Styles live in a <style> block and are inlined by premailer afterwards.
var layout = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Subject}}</title>
<style>
body { margin: 0; padding: 0; background: {{.Brand.Background}}; }
.wrapper { width: 100%; background: {{.Brand.Background}}; padding: 24px 0; }
.content { max-width: {{.Brand.ContentWidthPx}}px; margin: 0 auto; background: #FFFFFF; font-family: {{.Brand.FontFamily}}; color: {{.Brand.TextColor}}; padding: 32px; }
.preheader { display: none; font-size: 1px; color: {{.Brand.Background}}; line-height: 1px; max-height: 0; max-width: 0; opacity: 0; overflow: hidden; }
.logo { margin-bottom: 24px; }
.body-copy { font-size: 15px; line-height: 1.6; }
.cta { margin: 28px 0; }
.cta a { background: {{.Brand.Primary}}; color: #FFFFFF; padding: 12px 24px; border-radius: {{.Brand.ButtonRadiusPx}}px; text-decoration: none; display: inline-block; }
.signature { margin-top: 32px; font-size: 14px; }
.footer { margin-top: 24px; font-size: 12px; color: {{.Brand.Secondary}}; }
</style>
</head>
<body>
<div class="preheader">{{.Preheader}}</div>
<div class="wrapper">
<div class="content">
{{if .Brand.LogoURL}}<div class="logo"><img src="{{.Brand.LogoURL}}" alt="{{.Brand.Name}}" height="40"></div>{{end}}
<div class="body-copy">{{.Body}}</div>
{{if and .CTAText .CTAURL}}<div class="cta"><a href="{{.CTAURL}}">{{.CTAText}}</a></div>{{end}}
{{if .Signature}}<div class="signature">{{.Signature}}</div>{{end}}
{{if .Footer}}<div class="footer">{{.Footer}}</div>{{end}}
{{if .Brand.LegalAddress}}<div class="footer">{{.Brand.LegalAddress}}</div>{{end}}
</div>
</div>
</body>
</html>
`))

// layoutView is layoutData with the trusted HTML fragments marked as such.
type layoutView struct {
	layoutData
	Body      template.HTML
	Signature template.HTML
	Footer    template.HTML
}

func renderLayout(data layoutData) (string, error) {
	signature, err := expandBrandBlock(data.Brand.SignatureHTML, data)
	if err != nil {
		return "", err
	}
	footer, err := expandBrandBlock(data.Brand.FooterHTML, data)
	if err != nil {
		return "", err
	}

	view := layoutView{
		layoutData: data,
		Body:       template.HTML(data.BodyHTML),
		Signature:  template.HTML(signature),
		Footer:     template.HTML(footer),
	}

	var buf bytes.Buffer
	if err := layout.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// expandBrandBlock lets brand signature/footer blocks reference request data
// as templates (e.g. "© {{.Brand.Name}}"). Blocks that are not valid
// templates are used verbatim rather than failing the render.
func expandBrandBlock(block string, data layoutData) (string, error) {
	if block == "" {
		return "", nil
	}
	tpl, err := texttemplate.New("block").Parse(block)
	if err != nil {
		return block, nil //nolint:nilerr // verbatim fallback is the contract
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("brand block: %w", err)
	}
	return buf.String(), nil
}
