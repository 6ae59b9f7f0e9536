package htmlview

const galleryHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; background: #f6f7f7; }
.swatchbook-notice { padding: .5rem 1rem; margin-bottom: 1rem; border-left: 4px solid #72aee6; background: #fff; }
.swatchbook-notice.warning { border-color: #dba617; }
.swatchbook-notice.error { border-color: #d63638; }
.swatchbook-notice.success { border-color: #00a32a; }
.swatchbook-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); gap: 16px; }
.swatchbook-card { background: #fff; border: 1px solid #dcdcde; border-radius: 8px; overflow: hidden; }
.swatchbook-swatches { display: flex; height: 96px; }
.swatchbook-swatch { flex: 1; display: flex; align-items: flex-end; justify-content: center; padding: 4px; }
.swatchbook-swatch-label { font-size: 10px; color: var(--label-color, inherit); writing-mode: vertical-rl; }
.swatchbook-body { padding: 12px; }
.swatchbook-title { font-weight: 600; }
.swatchbook-current-badge { color: #00a32a; }
.swatchbook-fonts-label { font-size: 11px; color: #646970; margin-top: 8px; }
.font-row .sample { font-size: 15px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Notices}}<div class="swatchbook-notice {{.Level}}">{{.Message}}</div>
{{end}}{{if .Cards}}<div class="swatchbook-grid">
{{range .Cards}}<article class="swatchbook-card {{.ScopeClass}}" data-slug="{{.Slug}}" data-index="{{.Index}}">
{{if .StyleBlock}}<style>{{.StyleBlock}}</style>
{{end}}<div class="swatchbook-swatches">{{range .Swatches}}<div class="swatchbook-swatch" style="{{.Style}}"><span class="swatchbook-swatch-label">{{.Label}}</span></div>{{end}}</div>
<div class="swatchbook-body">
<div class="swatchbook-title">{{.Title}}{{if .Current}}<span class="swatchbook-current-badge"> (Current)</span>{{end}}</div>
{{if .HasFonts}}<div class="swatchbook-fonts"><div class="swatchbook-fonts-label">Fonts:</div>
{{range .Fonts}}<div class="font-row"><div class="sample" style="{{.Style}}">{{.Text}}</div></div>
{{end}}{{with .Body}}<div class="font-row"><div class="sample" style="{{.Style}}">{{.Text}}</div></div>
{{end}}</div>
{{end}}</div>
</article>
{{end}}</div>
{{else}}<p class="swatchbook-empty">No style variations found.</p>
{{end}}</body>
</html>
`

const previewHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} - Preview</title>
<style>
body { margin: 0; font-family: system-ui, sans-serif; }
.swatchbook-modal-header { display: flex; gap: 1rem; align-items: center; padding: .75rem 1.5rem; border-bottom: 1px solid #dcdcde; }
.swatchbook-preview-page { background: var(--bg-color); color: var(--text-color); padding: 3rem; }
.preview-heading, .preview-subheading { color: var(--heading-color); }
.preview-featured { background: var(--featured-bg); color: var(--featured-text); padding: 1.5rem; border-radius: 8px; }
.preview-list li { color: var(--list-color-1); }
.preview-list li.list-item-alt { color: var(--list-color-2); }
.preview-quote { border-left: 4px solid var(--tertiary-dark); background: var(--tertiary-light); margin: 1.5rem 0; padding: 1rem 1.5rem; }
.preview-btn-primary { background: var(--accent-dark); color: #fff; padding: .6rem 1.2rem; border-radius: 4px; text-decoration: none; }
.preview-btn-secondary { color: var(--accent-darker); border: 2px solid var(--accent-darker); padding: .5rem 1.1rem; border-radius: 4px; text-decoration: none; }
</style>
</head>
<body>
<div class="swatchbook-modal" data-slug="{{.Slug}}" data-mode="{{.Mode}}">
<header class="swatchbook-modal-header">
<h2 class="swatchbook-modal-title">{{.Title}}</h2>
<span class="swatchbook-theme-toggle">{{.ModeLabel}}</span>
<span class="swatchbook-counter">{{.Counter}}</span>
</header>
<div class="swatchbook-preview-page" style="{{.Style}}">
<h1 class="preview-heading">{{.Content.Heading}}</h1>
<section class="preview-featured">
<h2>{{.Content.FeaturedTitle}}</h2>
<p>{{.Content.FeaturedBody}}</p>
</section>
<h3 class="preview-subheading">{{.Content.Subheading}}</h3>
<ul class="preview-list">
{{range .Content.Items}}<li{{if .Alt}} class="list-item-alt"{{end}}>{{.Text}}</li>
{{end}}</ul>
<blockquote class="preview-quote"><p>{{.Content.Quote}}</p></blockquote>
<div class="preview-actions">
<a href="#" class="preview-btn-primary">{{.Content.PrimaryAction}}</a>
<a href="#" class="preview-btn-secondary">{{.Content.SecondaryAction}}</a>
</div>
</div>
</div>
</body>
</html>
`
