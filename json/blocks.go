// Package json encodes study blocks for UI layers and persists
// conversations and credentials as JSON files.
package json

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/study"
)

// blocksEnvelope is the v1 wire format for a rendered document.
type blocksEnvelope struct {
	Version int        `json:"version"`
	Blocks  []blockDTO `json:"blocks"`
}

// blockDTO is the JSON representation of a Block with a type discriminator.
type blockDTO struct {
	Type     string        `json:"type"`
	Level    *int          `json:"level,omitempty"`
	Spans    []spanDTO     `json:"spans,omitempty"`
	Items    [][]spanDTO   `json:"items,omitempty"`
	Language *string       `json:"language,omitempty"`
	Content  *string       `json:"content,omitempty"`
	Header   [][]spanDTO   `json:"header,omitempty"`
	Rows     [][][]spanDTO `json:"rows,omitempty"`
}

// spanDTO is the JSON representation of a Span with a type discriminator.
type spanDTO struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// MarshalBlocks serializes blocks to JSON in v1 envelope format.
func MarshalBlocks(blocks []study.Block) ([]byte, error) {
	env := blocksEnvelope{
		Version: 1,
		Blocks:  make([]blockDTO, len(blocks)),
	}
	for i, b := range blocks {
		dto, err := marshalBlock(b)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		env.Blocks[i] = dto
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalBlocks deserializes blocks from JSON in v1 envelope format.
func UnmarshalBlocks(data []byte) ([]study.Block, error) {
	var env blocksEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return nil, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	var blocks []study.Block
	for i, dto := range env.Blocks {
		b, err := unmarshalBlock(dto)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func marshalBlock(b study.Block) (blockDTO, error) {
	switch v := b.(type) {
	case study.Paragraph:
		return blockDTO{Type: "paragraph", Spans: marshalSpans(v.Text)}, nil
	case study.Heading:
		level := v.Level
		return blockDTO{Type: "heading", Level: &level, Spans: marshalSpans(v.Text)}, nil
	case study.BulletList:
		return blockDTO{Type: "bullet_list", Items: marshalCells(v.Items)}, nil
	case study.NumberedList:
		return blockDTO{Type: "numbered_list", Items: marshalCells(v.Items)}, nil
	case study.CodeBlock:
		return blockDTO{Type: "code", Language: &v.Language, Content: &v.Content}, nil
	case study.Table:
		rows := make([][][]spanDTO, len(v.Rows))
		for i, row := range v.Rows {
			rows[i] = marshalCells(row)
		}
		return blockDTO{Type: "table", Header: marshalCells(v.Header), Rows: rows}, nil
	case study.Blank:
		return blockDTO{Type: "blank"}, nil
	default:
		return blockDTO{}, fmt.Errorf("unknown block type: %T", b)
	}
}

func unmarshalBlock(dto blockDTO) (study.Block, error) {
	switch dto.Type {
	case "paragraph":
		spans, err := unmarshalSpans(dto.Spans)
		if err != nil {
			return nil, err
		}
		return study.Paragraph{Text: spans}, nil
	case "heading":
		spans, err := unmarshalSpans(dto.Spans)
		if err != nil {
			return nil, err
		}
		level := 1
		if dto.Level != nil {
			level = *dto.Level
		}
		if level < 1 || level > 3 {
			return nil, fmt.Errorf("heading level %d out of range", level)
		}
		return study.Heading{Level: level, Text: spans}, nil
	case "bullet_list":
		items, err := unmarshalCells(dto.Items)
		if err != nil {
			return nil, err
		}
		return study.BulletList{Items: items}, nil
	case "numbered_list":
		items, err := unmarshalCells(dto.Items)
		if err != nil {
			return nil, err
		}
		return study.NumberedList{Items: items}, nil
	case "code":
		var code study.CodeBlock
		if dto.Language != nil {
			code.Language = *dto.Language
		}
		if dto.Content != nil {
			code.Content = *dto.Content
		}
		return code, nil
	case "table":
		header, err := unmarshalCells(dto.Header)
		if err != nil {
			return nil, fmt.Errorf("header: %w", err)
		}
		var rows [][][]study.Span
		for i, r := range dto.Rows {
			row, err := unmarshalCells(r)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			rows = append(rows, row)
		}
		return study.Table{Header: header, Rows: rows}, nil
	case "blank":
		return study.Blank{}, nil
	default:
		return nil, fmt.Errorf("unknown block type: %q", dto.Type)
	}
}

func marshalSpans(spans []study.Span) []spanDTO {
	if len(spans) == 0 {
		return nil
	}
	out := make([]spanDTO, len(spans))
	for i, s := range spans {
		out[i] = spanDTO{Type: spanType(s), Text: s.Content()}
	}
	return out
}

func spanType(s study.Span) string {
	switch s.(type) {
	case study.Bold:
		return "bold"
	case study.Italic:
		return "italic"
	case study.Code:
		return "code"
	default:
		return "text"
	}
}

func unmarshalSpans(dtos []spanDTO) ([]study.Span, error) {
	var spans []study.Span
	for i, dto := range dtos {
		switch dto.Type {
		case "text":
			spans = append(spans, study.Plain{Text: dto.Text})
		case "bold":
			spans = append(spans, study.Bold{Text: dto.Text})
		case "italic":
			spans = append(spans, study.Italic{Text: dto.Text})
		case "code":
			spans = append(spans, study.Code{Text: dto.Text})
		default:
			return nil, fmt.Errorf("span %d: unknown span type: %q", i, dto.Type)
		}
	}
	return spans, nil
}

// marshalCells keeps empty cells as empty arrays so that positions survive.
func marshalCells(cells [][]study.Span) [][]spanDTO {
	if len(cells) == 0 {
		return nil
	}
	out := make([][]spanDTO, len(cells))
	for i, c := range cells {
		out[i] = marshalSpans(c)
		if out[i] == nil {
			out[i] = []spanDTO{}
		}
	}
	return out
}

func unmarshalCells(dtos [][]spanDTO) ([][]study.Span, error) {
	var cells [][]study.Span
	for i, d := range dtos {
		spans, err := unmarshalSpans(d)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		cells = append(cells, spans)
	}
	return cells, nil
}
