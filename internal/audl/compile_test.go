package audl

import (
	"errors"
	"io"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"testing"

	"golang.org/x/net/html"
)

var wrapped = regexp.MustCompile(`^<template>\n[\s\S]*\n</template>\n$`)

func TestCompile_Examples(t *testing.T) {
	type tc struct {
		input string
		want  string
	}

	tests := map[string]tc{
		"empty input": {
			input: "",
			want:  "<template>\n\n</template>\n",
		},
		"paragraph": {
			input: `P("Hi")`,
			want:  "<template>\n<p>\n  Hi\n</p>\n</template>\n",
		},
		"card": {
			input: `Div.card#main{ P("Hi") }`,
			want: "<template>\n" +
				"<div class=\"card\" id=\"main\">\n" +
				"  <p>\n" +
				"    Hi\n" +
				"  </p>\n" +
				"</div>\n" +
				"</template>\n",
		},
		"loop": {
			input: `For item in items[] { P("x") }`,
			want: "<template>\n" +
				"<template v-for=\"(item, i) in items\" :key=\"i\">\n" +
				"  <p>\n" +
				"    x\n" +
				"  </p>\n" +
				"</template>\n" +
				"</template>\n",
		},
		"page": {
			input: `V-Stack.page {
  H1("Title")
  Img[src="/logo.png"][alt=Logo]
  Ul#list {
    For user in users[] {
      Li.row("{{ user.name }}")
    }
  }
}`,
			want: "<template>\n" +
				"<v-stack class=\"page\">\n" +
				"  <h1>\n" +
				"    Title\n" +
				"  </h1>\n" +
				"  <img class=\"png\" src=\"/logo.png\" alt=\"Logo\" />\n" +
				"  <ul id=\"list\">\n" +
				"    <template v-for=\"(user, i) in users\" :key=\"i\">\n" +
				"      <li class=\"row\">\n" +
				"        {{ user.name }}\n" +
				"      </li>\n" +
				"    </template>\n" +
				"  </ul>\n" +
				"</v-stack>\n" +
				"</template>\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Compile(tt.input)
			if got != tt.want {
				t.Errorf("Compile(%q) =\n%s\nwant:\n%s", tt.input, got, tt.want)
			}
			if !wrapped.MatchString(got) {
				t.Errorf("output is not wrapped in <template>: %q", got)
			}
			if strings.Contains(got, "Error:") {
				t.Errorf("output contains an error marker: %q", got)
			}
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := map[string]string{
		"bad tag":        "1bad",
		"unclosed block": "Div {",
		"unclosed paren": `P("x"`,
		"multiline bad":  "Div {\n  \"a\nb\"\n}",
		"stray brace":    "Div }",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			got := Compile(input)
			if !IsErrorOutput(got) {
				t.Fatalf("Compile(%q) = %q, want an error comment", input, got)
			}
			if !strings.HasPrefix(got, "<!-- Error: ") || !strings.HasSuffix(got, " -->") {
				t.Errorf("malformed error comment %q", got)
			}
			if strings.ContainsAny(got, "\r\n") {
				t.Errorf("error comment spans several lines: %q", got)
			}
		})
	}
}

func TestCompile_BadHeaderComment(t *testing.T) {
	want := `<!-- Error: Invalid tag in "1bad" (tags start with a letter or underscore) -->`
	if got := Compile("1bad"); got != want {
		t.Errorf("Compile(1bad) = %q, want %q", got, want)
	}
}

func TestCompileTemplate_ReturnsTypedError(t *testing.T) {
	_, err := CompileTemplate("Div {")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("error %T is not *Error", err)
	}
	if cerr.Kind != StructuralParseError {
		t.Errorf("Kind = %v, want %v", cerr.Kind, StructuralParseError)
	}
}

func TestCompileWithOptions_Indent(t *testing.T) {
	got := CompileWithOptions(`Div{ P("x") }`, Options{IndentWidth: 4})
	want := "<template>\n<div>\n    <p>\n        x\n    </p>\n</div>\n</template>\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestCompile_Deterministic(t *testing.T) {
	input := "For a in as[] {\n  For b in a {\n    Span.x.x#y[k=v](\"t\")\n  }\n}\nFooter"
	want := Compile(input)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Compile(input)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != want {
			t.Errorf("call %d produced different output:\n%s\nwant:\n%s", i, got, want)
		}
	}
}

func TestCompile_NeverPanics(t *testing.T) {
	const alphabet = "Div P For in items[] {}(),\"\n.#=[]1x "
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		n := rng.Intn(40)
		var sb strings.Builder
		for j := 0; j < n; j++ {
			sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		input := sb.String()

		out := Compile(input)
		if !IsErrorOutput(out) && !wrapped.MatchString(out) {
			t.Fatalf("Compile(%q) = %q: neither a template nor an error comment", input, out)
		}
	}
}

func TestCompile_WellFormedMarkup(t *testing.T) {
	inputs := map[string]string{
		"card":   `Div.card#main{ P("Hi") Img[src=a] }`,
		"loop":   "Ul {\n  For x in xs[] {\n    Li(\"x\")\n    Hr\n  }\n}",
		"nested": "A { B { C { D(\"deep\") } } }",
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			out := Compile(input)
			if IsErrorOutput(out) {
				t.Fatalf("unexpected error: %s", out)
			}
			checkBalanced(t, out)
		})
	}
}

func TestCompile_MarkupAttributes(t *testing.T) {
	out := Compile(`Div.card.wide#main[role=list]{ For item in items[] { P("x") } }`)

	attrs := map[string]map[string]string{}
	z := html.NewTokenizer(strings.NewReader(out))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if !errors.Is(z.Err(), io.EOF) {
				t.Fatalf("tokenizer error: %v", z.Err())
			}
			break
		}
		tok := z.Token()
		if tt != html.StartTagToken || len(tok.Attr) == 0 {
			continue
		}
		m := map[string]string{}
		for _, a := range tok.Attr {
			m[a.Key] = a.Val
		}
		attrs[tok.Data] = m
	}

	div := attrs["div"]
	if div["class"] != "card wide" || div["id"] != "main" || div["role"] != "list" {
		t.Errorf("div attributes = %v", div)
	}
	loop := attrs["template"]
	if loop["v-for"] != "(item, i) in items" || loop[":key"] != "i" {
		t.Errorf("loop attributes = %v", loop)
	}
}

// checkBalanced verifies that every start tag in out is closed in order.
func checkBalanced(t *testing.T, out string) {
	t.Helper()

	var stack []string
	z := html.NewTokenizer(strings.NewReader(out))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if !errors.Is(z.Err(), io.EOF) {
				t.Fatalf("tokenizer error: %v", z.Err())
			}
			if len(stack) != 0 {
				t.Fatalf("unclosed tags %v in:\n%s", stack, out)
			}
			return
		case html.StartTagToken:
			name, _ := z.TagName()
			stack = append(stack, string(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			if len(stack) == 0 || stack[len(stack)-1] != string(name) {
				t.Fatalf("unexpected </%s> with open tags %v in:\n%s", name, stack, out)
			}
			stack = stack[:len(stack)-1]
		}
	}
}

func FuzzCompile(f *testing.F) {
	for _, seed := range []string{"", `P("Hi")`, `Div.card#main{ P("Hi") }`, `For item in items[] { P("x") }`, "1bad"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		out := Compile(input)
		if !IsErrorOutput(out) && !wrapped.MatchString(out) {
			t.Fatalf("Compile(%q) = %q", input, out)
		}
	})
}
