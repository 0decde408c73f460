package kernel

import "github.com/weiihann/kernbench/workload"

// Tokens is the output of the tokenizer kernel.
type Tokens struct {
	Tokens   []string
	TotalLen int
}

// NewStringParse returns the string tokenization kernel.
func NewStringParse(p StringParseParams) Kernel {
	return &paramKernel[StringParseParams]{
		name:     NameStringParse,
		category: CategoryText,
		seed:     p.Seed,
		params:   p,
		prepare:  prepareStringParse,
	}
}

func prepareStringParse(
	p StringParseParams, gen *workload.Generator,
) (Task, error) {
	raw, err := gen.Text(p.Chars, p.SpaceEvery)
	if err != nil {
		return nil, err
	}

	text := string(raw)

	return newTask(
		func() Tokens { return Tokenize(text, ' ') },
		func(t Tokens) Witness {
			return Witness{
				Int("tokens", int64(len(t.Tokens))),
				Int("total_len", int64(t.TotalLen)),
			}
		},
	), nil
}

// Tokenize splits s on delim, skipping empty tokens.
func Tokenize(s string, delim byte) Tokens {
	var out Tokens

	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] != delim {
			if start < 0 {
				start = i
			}

			continue
		}

		if start >= 0 {
			out.Tokens = append(out.Tokens, s[start:i])
			out.TotalLen += i - start
			start = -1
		}
	}

	if start >= 0 {
		out.Tokens = append(out.Tokens, s[start:])
		out.TotalLen += len(s) - start
	}

	return out
}
