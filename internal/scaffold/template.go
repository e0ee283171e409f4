package scaffold

import (
	"bytes"
	"fmt"
	"html/template"
)

var entryTemplate = template.Must(template.New("entry").Parse(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.Date}} — {{.Title}}</title>
  </head>
  <body>
    <article class="entry-card">
      <header class="entry-header">
        <h3>{{.Date}} — {{.Title}}</h3>
        <p class="entry-meta">One-line summary goes here.</p>
      </header>

      <section>
        <h4>Skills Learned (Summary)</h4>
        <ul>
          <li>Replace this</li>
          <li>Replace this</li>
        </ul>
      </section>

      <section>
        <h4>Captain's Log</h4>
        <p>Write your entry here.</p>
      </section>
    </article>
  </body>
</html>
`))

// Render produces a new entry document with the heading "<date> — <title>".
// The title is HTML-escaped.
func Render(date, title string) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Date  string
		Title string
	}{Date: date, Title: title}

	if err := entryTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render entry template: %w", err)
	}
	return buf.Bytes(), nil
}
