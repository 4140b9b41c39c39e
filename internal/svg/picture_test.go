package svg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPicture_Render(t *testing.T) {
	t.Parallel()

	pic := NewPicture("10px", "20px", 10, 20)
	pic.Append(
		Line(Point{}, Point{X: 1.5, Y: 2}, "stroke", "black"),
		Rect(Point{X: 1, Y: 1}, 2, 3),
	)

	var buf bytes.Buffer
	require.NoError(t, pic.Render(&buf))
	assert.Equal(t,
		`<?xml version="1.0" ?>`+"\n"+
			`<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">`+"\n"+
			`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" version="1.1" width="10px" height="20px" viewBox="0 0 10 20">`+
			`<line x1="0" y1="0" x2="1.5" y2="2" stroke="black"></line>`+
			`<rect x="1" y="1" width="2" height="3"></rect>`+
			"</svg>\n",
		buf.String())

	t.Run("repeatable", func(t *testing.T) {
		var again bytes.Buffer
		require.NoError(t, pic.Render(&again))
		assert.Equal(t, buf.String(), again.String())
		assert.Nil(t, pic.Root().Parent)
	})
}

func TestElements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give func() *Picture
		want string
	}{
		{
			desc: "path",
			give: func() *Picture {
				pic := NewPicture("1", "1", 1, 1)
				pic.Append(Path("M 0 0 L 1 1", "fill", "none"))
				return pic
			},
			want: `<path d="M 0 0 L 1 1" fill="none"></path>`,
		},
		{
			desc: "text",
			give: func() *Picture {
				pic := NewPicture("1", "1", 1, 1)
				pic.Append(Text("a < b", "x", "0"), Text(""))
				return pic
			},
			want: `<text x="0">a &lt; b</text><text></text>`,
		},
		{
			desc: "text path",
			give: func() *Picture {
				pic := NewPicture("1", "1", 1, 1)
				path := Path("M 0 0", "id", "p")
				text := Text("")
				text.AppendChild(TextPath("along", "xlink:href", "#p"))
				pic.Append(Defs(path), text)
				return pic
			},
			want: `<defs><path d="M 0 0" id="p"></path></defs>` +
				`<text><textPath xlink:href="#p">along</textPath></text>`,
		},
		{
			desc: "group",
			give: func() *Picture {
				pic := NewPicture("1", "1", 1, 1)
				g := Group("stroke", "red")
				g.AppendChild(Line(Point{X: -0.25}, Point{X: 1e3}))
				pic.Append(g)
				return pic
			},
			want: `<g stroke="red"><line x1="-0.25" y1="0" x2="1000" y2="0"></line></g>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, tt.give().Render(&buf))
			assert.Contains(t, buf.String(), `viewBox="0 0 1 1">`+tt.want+"</svg>\n")
		})
	}
}

func TestNum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give float64
		want string
	}{
		{0, "0"},
		{3, "3"},
		{-50, "-50"},
		{0.1, "0.1"},
		{1380.0 / 6, "230"},
		{57.5, "57.5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Num(tt.give), "Num(%v)", tt.give)
	}
}
