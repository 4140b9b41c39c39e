package highlight

import (
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/go-enry/go-enry/v2"
)

// AutoDetect is the language name that asks [LexerFor]
// to guess the language from the source code.
const AutoDetect = "auto"

// Lexer analyzes source code and generates a stream of tokens.
type Lexer interface {
	Lex(src string) ([]chroma.Token, error)
}

// chromaLexer builds a [Lexer] from a Chroma lexer.
type chromaLexer struct{ l chroma.Lexer }

// Lex lexically analyzes the given source code using Chroma.
func (cl *chromaLexer) Lex(src string) ([]chroma.Token, error) {
	return chroma.Tokenise(cl.l, nil, src)
}

// _detectCandidates are the languages considered by [AutoDetect].
var _detectCandidates = []string{
	"Go", "Rust", "C", "C++", "Python", "Shell",
	"JavaScript", "Java", "Haskell", "OCaml",
}

// LexerFor returns a lexer for the named language.
//
// If lang is [AutoDetect], the language is guessed from src:
// a shebang line wins, otherwise the classifier's best guess
// among a handful of common languages is used.
// LexerFor returns nil if the language is not known to Chroma.
func LexerFor(lang, src string) Lexer {
	if lang == AutoDetect {
		lang = detect(src)
	}
	if lang == "" {
		return nil
	}

	l := lexers.Get(lang)
	if l == nil {
		return nil
	}
	return &chromaLexer{l: chroma.Coalesce(l)}
}

func detect(src string) string {
	content := []byte(src)
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return lang
	}
	// The classifier ranks every candidate
	// so it never reports a safe answer.
	lang, _ := enry.GetLanguageByClassifier(content, _detectCandidates)
	return lang
}
