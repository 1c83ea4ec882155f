package jsonl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	vbt "github.com/2lambda123/vectorbt"
	"github.com/2lambda123/vectorbt/records"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
)

// ParserConf configures a JSONL Parser, suitable for JSON Lines data
type ParserConf struct {
	HeaderLines   int  // The number of lines to ignore from the beginning of each input. Defaults to 0.
	Comment       rune // Lines beginning with the comment character are ignored. Defaults to no comment character.
	MaxBufferSize int  // Maximum size in bytes of the buffer used to read lines from the input
}

// Parser produces record arrays from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser. Fields are parsed from each line
// of JSON using their field name, which should be a gjson path.
func CreateParser(conf *ParserConf) *Parser {
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse parses JSONL data to produce a record array conforming to schema
func (p *Parser) Parse(r io.Reader, schema vbt.Schema) (*records.Array, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	for i := 0; i < p.conf.HeaderLines; i++ {
		scanner.Scan()
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}
	arr, err := records.CreateArray(schema, 0)
	if err != nil {
		return nil, err
	}
	names := schema.FieldNames()
	kinds := schema.FieldKinds()
	lineNum := p.conf.HeaderLines
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if p.conf.Comment != 0 && strings.HasPrefix(line, string(p.conf.Comment)) {
			continue
		}
		parsed := gjson.Parse(line)
		values := make([]interface{}, len(names))
		for i, name := range names {
			v, err := parseValue(parsed.Get(name), name, kinds[i])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			values[i] = v
		}
		if err := arr.Append(values...); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return arr, nil
}

// ParseAll parses several JSONL inputs concurrently and concatenates the
// resulting record arrays in argument order
func (p *Parser) ParseAll(schema vbt.Schema, rs ...io.Reader) (*records.Array, error) {
	arrays := make([]*records.Array, len(rs))
	var g errgroup.Group
	for i, r := range rs {
		i, r := i, r
		g.Go(func() error {
			arr, err := p.Parse(r, schema)
			if err != nil {
				return err
			}
			arrays[i] = arr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records.Concat(arrays...)
}

// parseValue converts a single gjson result to the scalar expected by a
// schema field
func parseValue(res gjson.Result, name string, kind vbt.FieldKind) (interface{}, error) {
	if !res.Exists() {
		return nil, fmt.Errorf("field %s is missing", name)
	}
	switch kind {
	case vbt.IntKind:
		if res.Type != gjson.Number {
			return nil, fmt.Errorf("field %s was not a number. Was: %s", name, res.Raw)
		}
		return res.Int(), nil
	case vbt.FloatKind:
		if res.Type != gjson.Number {
			return nil, fmt.Errorf("field %s was not a number. Was: %s", name, res.Raw)
		}
		return res.Float(), nil
	case vbt.BoolKind:
		if res.Type != gjson.True && res.Type != gjson.False {
			return nil, fmt.Errorf("field %s was not a boolean. Was: %s", name, res.Raw)
		}
		return res.Bool(), nil
	case vbt.StringKind:
		if res.Type != gjson.String {
			return nil, fmt.Errorf("field %s was not a string. Was: %s", name, res.Raw)
		}
		return res.String(), nil
	default:
		return nil, fmt.Errorf("JSONL parsing does not support field kind %s", kind)
	}
}
