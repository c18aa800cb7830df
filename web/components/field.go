package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	twmerge "github.com/Oudwins/tailwind-merge-go"
)

const inputClass = "mt-1 block w-full rounded-md border border-gray-300 px-3 py-2 text-sm"

// InputProps configures Input.
type InputProps struct {
	Label string
	Name  string
	Type  string
	Value string
	Attrs string // extra raw attributes such as min/max/step
	Class string
}

// Input renders a labelled form input.
func Input(p InputProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		typ := p.Type
		if typ == "" {
			typ = "text"
		}
		_, err := fmt.Fprintf(w,
			`<label class="block text-sm font-medium">%s<input type="%s" name="%s" value="%s" class="%s" %s></label>`,
			templ.EscapeString(p.Label), typ, templ.EscapeString(p.Name), templ.EscapeString(p.Value),
			twmerge.Merge(inputClass, p.Class), p.Attrs)
		return err
	})
}

// Checkbox renders a labelled checkbox. A trailing hidden "off" input makes
// an unchecked box explicit; servers read the first value.
func Checkbox(label, name string, checked bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		attr := ""
		if checked {
			attr = " checked"
		}
		_, err := fmt.Fprintf(w,
			`<label class="flex items-center gap-2 text-sm"><input type="checkbox" name="%[1]s"%[2]s><input type="hidden" name="%[1]s" value="off">%[3]s</label>`,
			templ.EscapeString(name), attr, templ.EscapeString(label))
		return err
	})
}
