package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/cristianadrielbraun/qrbrand/web/components"
)

const script = `<script>
document.getElementById("qr-form").addEventListener("submit", async (e) => {
  e.preventDefault();
  const toasts = document.getElementById("toasts");
  const res = await fetch("/api/qr", {method: "POST", body: new FormData(e.target), headers: {"HX-Request": "true"}});
  if (!res.ok) { toasts.insertAdjacentHTML("beforeend", await res.text()); return; }
  const img = document.getElementById("qr-preview");
  if (img.src) URL.revokeObjectURL(img.src);
  img.src = URL.createObjectURL(await res.blob());
  img.hidden = false;
  const v = res.headers.get("X-QR-Verified");
  if (v === "false") {
    const body = new FormData();
    body.set("title", "Scan check failed");
    body.set("description", "The code may not scan reliably. Try a smaller logo.");
    body.set("variant", "warning");
    body.set("dismissible", "on");
    const t = await fetch("/api/htmx/toast", {method: "POST", body});
    toasts.insertAdjacentHTML("beforeend", await t.text());
  }
});
</script>`

// HomePage renders the generator form.
func HomePage(d components.FormDefaults) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>QR code generator</title><script src="https://cdn.tailwindcss.com"></script></head>`+
			`<body class="min-h-screen bg-gray-50"><main class="mx-auto max-w-3xl p-6">`+
			`<h1 class="text-2xl font-bold">QR code generator</h1>`+
			`<form id="qr-form" class="mt-6 grid gap-4" enctype="multipart/form-data">`); err != nil {
			return err
		}
		fields := []templ.Component{
			components.Input(components.InputProps{Label: "URL", Name: "url", Value: d.URL, Attrs: `required placeholder="https://example.com"`}),
			components.Input(components.InputProps{Label: "Size (px)", Name: "size", Type: "number", Value: strconv.Itoa(d.Size), Attrs: `min="64" max="` + strconv.Itoa(d.MaxSize) + `"`}),
			components.Input(components.InputProps{Label: "Quiet zone (modules)", Name: "quiet", Type: "number", Value: strconv.Itoa(d.QuietZone), Attrs: `min="0"`}),
			components.Input(components.InputProps{Label: "Logo", Name: "logo", Type: "file", Attrs: `accept="image/*,.svg"`}),
			components.Input(components.InputProps{Label: "Logo scale", Name: "logoScale", Type: "number", Value: formatFloat(d.LogoScale), Attrs: `min="0.05" max="0.35" step="0.01"`}),
			components.Input(components.InputProps{Label: "Plate padding", Name: "logoPad", Type: "number", Value: formatFloat(d.LogoPad), Attrs: `min="0" step="0.01"`}),
			components.Checkbox("White plate behind logo", "logoPlate", d.LogoPlate),
			components.Checkbox("Show URL below the code", "showUrl", false),
			components.Input(components.InputProps{Label: "Text below the code (instead of URL)", Name: "altText"}),
			components.Checkbox("Verify the code scans", "verify", d.Verify),
		}
		for _, f := range fields {
			if err := f.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `<button type="submit" class="rounded-md bg-black px-4 py-2 text-white">Generate</button></form>`+
			`<img id="qr-preview" class="mt-6 max-w-full border" alt="Generated QR code" hidden>`+
			`<div id="toasts" class="fixed bottom-4 right-4 grid gap-2"></div></main>`+script+`</body></html>`)
		return err
	})
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
