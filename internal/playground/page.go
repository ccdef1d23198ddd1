package playground

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

const sample = `V-Stack.page {
  H1("Hello")
  For item in items[] {
    P.row("{{ item }}")
  }
}`

const pageCSS = `
body { margin: 0; font-family: system-ui, sans-serif; }
main { display: flex; flex-direction: column; height: 100vh; padding: 1rem; box-sizing: border-box; }
.panes { display: flex; flex: 1; gap: 1rem; min-height: 0; }
textarea, pre { flex: 1; margin: 0; padding: .75rem; font: 14px/1.4 ui-monospace, monospace; border: 1px solid #ccc; overflow: auto; }
pre.error { color: #b00020; }
`

// pageJS debounces edits and keeps only the newest response.
const pageJS = `
(() => {
  const input = document.getElementById("audl");
  const output = document.getElementById("output");
  let timer, seq = 0;

  const update = async () => {
    const mine = ++seq;
    const res = await fetch("compile", { method: "POST", body: input.value });
    const text = await res.text();
    if (mine !== seq) return;
    output.textContent = text;
    output.classList.toggle("error", text.startsWith("<!-- Error:"));
  };

  input.addEventListener("input", () => {
    clearTimeout(timer);
    timer = setTimeout(update, 300);
  });
  update();
})();
`

// page renders the playground document.
func page() g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    "AUDL playground",
		Language: "en",
		Head: []g.Node{
			g.El("style", g.Raw(pageCSS)),
		},
		Body: []g.Node{
			h.Main(
				h.H1(g.Text("AUDL playground")),
				h.Div(h.Class("panes"),
					h.Textarea(h.ID("audl"), g.Attr("spellcheck", "false"), g.Text(sample)),
					h.Pre(h.ID("output")),
				),
			),
			h.Script(g.Raw(pageJS)),
		},
	})
}
