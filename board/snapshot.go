package board

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// PlacedWord is a word already on the board, given by its first cell.
type PlacedWord struct {
	Word      string `yaml:"word"`
	Row       int    `yaml:"row"`
	Col       int    `yaml:"col"`
	Direction string `yaml:"direction"`
}

// A Snapshot is a board state plus, optionally, the rack to play from. The
// board can be described row by row, as a list of placed words, or both;
// rows are applied first.
//
//	rack: AEINRST
//	rows:
//	  - "..............."
//	words:
//	  - {word: CAT, row: 7, col: 7, direction: h}
type Snapshot struct {
	Rack  string       `yaml:"rack"`
	Rows  []string     `yaml:"rows"`
	Words []PlacedWord `yaml:"words"`
}

// ReadSnapshot decodes a YAML snapshot.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	s := &Snapshot{}
	if err := yaml.NewDecoder(r).Decode(s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding board snapshot: %w", err)
	}
	return s, nil
}

// Board builds the board the snapshot describes.
func (s *Snapshot) Board() (*Board, error) {
	b := New()
	if len(s.Rows) > Dim {
		return nil, fmt.Errorf("%w: snapshot has %d rows", ErrOffBoard, len(s.Rows))
	}
	for i, row := range s.Rows {
		if err := b.SetRow(i, strings.TrimRight(row, "\r\n")); err != nil {
			return nil, err
		}
	}
	for _, w := range s.Words {
		dir, err := ParseDirection(w.Direction)
		if err != nil {
			return nil, err
		}
		if err := b.AddWord(strings.ToUpper(w.Word), w.Row, w.Col, dir); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// SnapshotOf captures a board (and rack) as a snapshot.
func SnapshotOf(b *Board, rack string) *Snapshot {
	s := &Snapshot{Rack: rack}
	s.Rows = strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	return s
}

// Write encodes the snapshot as YAML.
func (s *Snapshot) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(s)
}
