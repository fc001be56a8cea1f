package pdfcpu

import (
	"bytes"
	"strconv"
	"strings"
)

// operand is a value preceding an operator in a content stream.
type operand struct {
	num     float64
	text    string
	isText  bool
	array   []operand
	isArray bool
}

// kerningGap is the TJ adjustment, in thousandths of an em, treated as a
// word break.
const kerningGap = -200

// ParseContent returns the text shown by a page content stream. Text
// positioning operators that move to another line start a new line.
func ParseContent(data []byte) string {
	p := &contentParser{data: data}
	p.run()
	return p.text()
}

type contentParser struct {
	data     []byte
	pos      int
	operands []operand
	out      strings.Builder
	lastByte byte
}

func (p *contentParser) run() {
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		switch {
		case isWhite(c):
			p.pos++
		case c == '%':
			p.skipLine()
		case c == '(':
			p.operands = append(p.operands, operand{text: p.readLiteral(), isText: true})
		case c == '<' && p.peek(1) == '<':
			p.skipDict()
		case c == '<':
			p.operands = append(p.operands, operand{text: p.readHex(), isText: true})
		case c == '[':
			p.operands = append(p.operands, p.readArray())
		case c == '/':
			p.pos++
			p.readToken()
		case isNumberStart(c):
			p.operands = append(p.operands, operand{num: p.readNumber()})
		default:
			op := p.readToken()
			if op == "" {
				p.pos++
				continue
			}
			p.apply(op)
			p.operands = p.operands[:0]
		}
	}
}

func (p *contentParser) apply(op string) {
	switch op {
	case "Tj", "TJ":
		p.show(p.last())
	case "'", "\"":
		p.newline()
		p.show(p.last())
	case "T*", "Tm", "ET":
		p.newline()
	case "Td", "TD":
		if len(p.operands) < 2 {
			return
		}
		tx, ty := p.operands[len(p.operands)-2].num, p.operands[len(p.operands)-1].num
		if ty != 0 {
			p.newline()
		} else if tx != 0 {
			p.space()
		}
	case "ID":
		p.skipInlineImage()
	}
}

func (p *contentParser) last() operand {
	if len(p.operands) == 0 {
		return operand{}
	}
	return p.operands[len(p.operands)-1]
}

func (p *contentParser) show(o operand) {
	switch {
	case o.isText:
		p.write(o.text)
	case o.isArray:
		for _, e := range o.array {
			if e.isText {
				p.write(e.text)
			} else if e.num <= kerningGap {
				p.space()
			}
		}
	}
}

func (p *contentParser) write(s string) {
	if s == "" {
		return
	}
	p.out.WriteString(s)
	p.lastByte = s[len(s)-1]
}

func (p *contentParser) newline() {
	if p.lastByte != 0 && p.lastByte != '\n' {
		p.write("\n")
	}
}

func (p *contentParser) space() {
	if p.lastByte != 0 && p.lastByte != '\n' && p.lastByte != ' ' {
		p.write(" ")
	}
}

// text returns the collected text with trailing spaces removed from each line.
func (p *contentParser) text() string {
	lines := strings.Split(p.out.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func (p *contentParser) peek(n int) byte {
	if p.pos+n < len(p.data) {
		return p.data[p.pos+n]
	}
	return 0
}

func (p *contentParser) skipLine() {
	for p.pos < len(p.data) && p.data[p.pos] != '\n' && p.data[p.pos] != '\r' {
		p.pos++
	}
}

func (p *contentParser) skipDict() {
	depth := 0
	for p.pos < len(p.data) {
		if p.data[p.pos] == '<' && p.peek(1) == '<' {
			depth++
			p.pos += 2
			continue
		}
		if p.data[p.pos] == '>' && p.peek(1) == '>' {
			depth--
			p.pos += 2
			if depth == 0 {
				return
			}
			continue
		}
		p.pos++
	}
}

// skipInlineImage moves past the binary data of an inline image up to EI.
func (p *contentParser) skipInlineImage() {
	if i := bytes.Index(p.data[p.pos:], []byte("EI")); i >= 0 {
		p.pos += i + 2
		return
	}
	p.pos = len(p.data)
}

// readLiteral reads a parenthesized string, decoding escapes. Bytes are
// mapped to runes one to one.
func (p *contentParser) readLiteral() string {
	var sb strings.Builder
	depth := 0
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		p.pos++
		switch c {
		case '(':
			if depth > 0 {
				sb.WriteByte('(')
			}
			depth++
		case ')':
			depth--
			if depth == 0 {
				return sb.String()
			}
			sb.WriteByte(')')
		case '\\':
			p.readEscape(&sb)
		default:
			sb.WriteRune(rune(c))
		}
	}
	return sb.String()
}

func (p *contentParser) readEscape(sb *strings.Builder) {
	if p.pos >= len(p.data) {
		return
	}
	c := p.data[p.pos]
	p.pos++
	switch c {
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'b', 'f':
	case '\n':
	case '\r':
		if p.pos < len(p.data) && p.data[p.pos] == '\n' {
			p.pos++
		}
	default:
		if c < '0' || c > '7' {
			sb.WriteByte(c)
			return
		}
		val := int(c - '0')
		for n := 0; n < 2 && p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '7'; n++ {
			val = val*8 + int(p.data[p.pos]-'0')
			p.pos++
		}
		sb.WriteRune(rune(val & 0xff))
	}
}

func (p *contentParser) readHex() string {
	p.pos++
	var digits []byte
	for p.pos < len(p.data) && p.data[p.pos] != '>' {
		if c := p.data[p.pos]; !isWhite(c) {
			digits = append(digits, c)
		}
		p.pos++
	}
	p.pos++
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	var sb strings.Builder
	for i := 0; i+1 < len(digits); i += 2 {
		v, err := strconv.ParseUint(string(digits[i:i+2]), 16, 8)
		if err != nil {
			continue
		}
		sb.WriteRune(rune(v))
	}
	return sb.String()
}

func (p *contentParser) readArray() operand {
	p.pos++
	arr := operand{isArray: true}
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		switch {
		case c == ']':
			p.pos++
			return arr
		case isWhite(c):
			p.pos++
		case c == '(':
			arr.array = append(arr.array, operand{text: p.readLiteral(), isText: true})
		case c == '<':
			arr.array = append(arr.array, operand{text: p.readHex(), isText: true})
		case isNumberStart(c):
			arr.array = append(arr.array, operand{num: p.readNumber()})
		default:
			p.pos++
		}
	}
	return arr
}

func (p *contentParser) readNumber() float64 {
	start := p.pos
	p.pos++
	for p.pos < len(p.data) && (p.data[p.pos] >= '0' && p.data[p.pos] <= '9' || p.data[p.pos] == '.') {
		p.pos++
	}
	v, _ := strconv.ParseFloat(string(p.data[start:p.pos]), 64)
	return v
}

func (p *contentParser) readToken() string {
	start := p.pos
	for p.pos < len(p.data) && !isWhite(p.data[p.pos]) && !isDelimiter(p.data[p.pos]) {
		p.pos++
	}
	return string(p.data[start:p.pos])
}

func isWhite(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t' || c == '\f' || c == 0
}

func isDelimiter(c byte) bool {
	return strings.IndexByte("()<>[]{}/%", c) >= 0
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '-' || c == '+' || c == '.'
}
