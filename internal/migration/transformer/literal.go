/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package transformer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

var literalKeywords = map[string]string{
	"None":  "null",
	"True":  "true",
	"False": "false",
	"null":  "null",
	"true":  "true",
	"false": "false",
}

// normalizeLiteral rewrites a JSON or Python-literal encoded structure as JSON.
// Only data literals are accepted: strings, numbers, the None/True/False keywords,
// lists, tuples and dicts. Any other token is rejected.
func normalizeLiteral(text string) ([]byte, error) {
	out := make([]byte, 0, len(text)+16)
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '{' || c == '[' || c == ':' || c == ',':
			out = append(out, c)
			i++
		case c == '(':
			out = append(out, '[')
			i++
		case c == '}' || c == ']' || c == ')':
			out = trimTrailingComma(out)
			if c == ')' {
				c = ']'
			}
			out = append(out, c)
			i++
		case c == '\'' || c == '"':
			s, next, err := readQuoted(text, i)
			if err != nil {
				return nil, err
			}
			encoded, err := json.Marshal(s)
			if err != nil {
				return nil, err
			}
			out = append(out, encoded...)
			i = next
		case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
			start := i
			for i < len(text) && strings.IndexByte("+-.eE0123456789", text[i]) >= 0 {
				i++
			}
			number := strings.TrimPrefix(text[start:i], "+")
			if _, err := strconv.ParseFloat(number, 64); err != nil {
				return nil, fmt.Errorf("invalid number %q at offset %d", text[start:i], start)
			}
			out = append(out, number...)
		case isIdentStart(c):
			start := i
			for i < len(text) && (isIdentStart(text[i]) || (text[i] >= '0' && text[i] <= '9')) {
				i++
			}
			word := text[start:i]
			keyword, ok := literalKeywords[word]
			if !ok {
				return nil, fmt.Errorf("unsupported token %q at offset %d", word, start)
			}
			out = append(out, keyword...)
		default:
			return nil, fmt.Errorf("unexpected character %q at offset %d", c, i)
		}
	}
	return out, nil
}

// readQuoted reads a quoted string starting at text[start] and returns its value and
// the offset after the closing quote.
func readQuoted(text string, start int) (string, int, error) {
	quote := text[start]
	var sb strings.Builder
	for i := start + 1; i < len(text); {
		c := text[i]
		switch {
		case c == quote:
			return sb.String(), i + 1, nil
		case c == '\\':
			if i+1 >= len(text) {
				return "", 0, fmt.Errorf("unterminated escape at offset %d", i)
			}
			n, err := readEscape(text, i, &sb)
			if err != nil {
				return "", 0, err
			}
			i += n
		default:
			r, size := utf8.DecodeRuneInString(text[i:])
			sb.WriteRune(r)
			i += size
		}
	}
	return "", 0, fmt.Errorf("unterminated string starting at offset %d", start)
}

// readEscape decodes the escape sequence at text[i] and returns its length. A \u high
// surrogate followed by a \u low surrogate decodes as one rune. Named \N{...} escapes
// are kept verbatim.
func readEscape(text string, i int, sb *strings.Builder) (int, error) {
	e := text[i+1]
	switch e {
	case 'n':
		sb.WriteByte('\n')
	case 't':
		sb.WriteByte('\t')
	case 'r':
		sb.WriteByte('\r')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'v':
		sb.WriteByte('\v')
	case 'a':
		sb.WriteByte('\a')
	case '\\', '\'', '"', '/':
		sb.WriteByte(e)
	case '0', '1', '2', '3', '4', '5', '6', '7':
		n := 1
		for n < 3 && i+1+n < len(text) && text[i+1+n] >= '0' && text[i+1+n] <= '7' {
			n++
		}
		code, _ := strconv.ParseUint(text[i+1:i+1+n], 8, 32)
		sb.WriteRune(rune(code))
		return 1 + n, nil
	case 'x', 'u', 'U':
		width := map[byte]int{'x': 2, 'u': 4, 'U': 8}[e]
		r, err := readHex(text, i+2, width)
		if err != nil {
			return 0, fmt.Errorf("invalid escape at offset %d: %w", i, err)
		}
		if e == 'u' && utf16.IsSurrogate(r) && strings.HasPrefix(text[i+6:], `\u`) {
			if low, err := readHex(text, i+8, 4); err == nil {
				if pair := utf16.DecodeRune(r, low); pair != utf8.RuneError {
					sb.WriteRune(pair)
					return 12, nil
				}
			}
		}
		sb.WriteRune(r)
		return 2 + width, nil
	default:
		// Unknown escapes keep the backslash.
		sb.WriteByte('\\')
		sb.WriteByte(e)
	}
	return 2, nil
}

func readHex(text string, start, width int) (rune, error) {
	if start+width > len(text) {
		return 0, fmt.Errorf("truncated escape")
	}
	code, err := strconv.ParseUint(text[start:start+width], 16, 32)
	if err != nil {
		return 0, err
	}
	return rune(code), nil
}

func trimTrailingComma(out []byte) []byte {
	if n := len(out); n > 0 && out[n-1] == ',' {
		return out[:n-1]
	}
	return out
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
