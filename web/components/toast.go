package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// Variant selects the colour scheme of a toast.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

// ParseVariant maps a form value to a Variant, defaulting to success.
func ParseVariant(s string) Variant {
	switch s {
	case "error", "destructive":
		return VariantError
	case "warning":
		return VariantWarning
	case "info":
		return VariantInfo
	default:
		return VariantSuccess
	}
}

// ToastProps configures Toast.
type ToastProps struct {
	Title       string
	Description string
	Variant     Variant
	Dismissible bool
	Class       string
}

var variantClasses = map[Variant]string{
	VariantSuccess: "border-green-600 bg-green-50 text-green-900",
	VariantError:   "border-red-600 bg-red-50 text-red-900",
	VariantWarning: "border-yellow-500 bg-yellow-50 text-yellow-900",
	VariantInfo:    "border-blue-600 bg-blue-50 text-blue-900",
}

// ToastClass returns the merged class list for a toast. Caller classes win
// over the variant defaults.
func ToastClass(v Variant, extra string) string {
	base, ok := variantClasses[v]
	if !ok {
		base = variantClasses[VariantSuccess]
	}
	return twmerge.Merge("pointer-events-auto w-full max-w-sm rounded-md border p-4 shadow-lg", base, extra)
}

// Toast renders a notification fragment meant to be swapped into #toasts.
func Toast(p ToastProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div role="alert" data-variant="%s" class="%s">`,
			templ.EscapeString(string(p.Variant)), templ.EscapeString(ToastClass(p.Variant, p.Class)))
		if err != nil {
			return err
		}
		if p.Title != "" {
			if _, err := fmt.Fprintf(w, `<p class="font-semibold">%s</p>`, templ.EscapeString(p.Title)); err != nil {
				return err
			}
		}
		if p.Description != "" {
			if _, err := fmt.Fprintf(w, `<p class="mt-1 text-sm">%s</p>`, templ.EscapeString(p.Description)); err != nil {
				return err
			}
		}
		if p.Dismissible {
			if _, err := io.WriteString(w, `<button type="button" class="mt-2 text-xs underline" onclick="this.parentElement.remove()">Dismiss</button>`); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `</div>`)
		return err
	})
}
