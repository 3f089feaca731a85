// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pairwise/oracle"
	"github.com/katalvlaran/pairwise/prefmatrix"
)

// JudgmentFile is the on-disk form of a recorded session.
type JudgmentFile struct {
	Session   string          `yaml:"session,omitempty"`
	Judgments []JudgmentEntry `yaml:"judgments"`
}

// JudgmentEntry is one recorded answer.
type JudgmentEntry struct {
	A        string `yaml:"a"`
	B        string `yaml:"b"`
	Relation int    `yaml:"relation"`
}

// LoadJudgments reads a judgment file. Every relation must be 1..3 and a
// pair may appear only once.
func LoadJudgments(path string) ([]oracle.Judgment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.LoadJudgments: %w", err)
	}
	var f JudgmentFile
	if err = yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config.LoadJudgments: parse %s: %w", path, err)
	}

	seen := make(map[oracle.Pair]struct{}, len(f.Judgments))
	out := make([]oracle.Judgment, 0, len(f.Judgments))
	for i, e := range f.Judgments {
		rel, err := prefmatrix.JudgmentOf(e.Relation)
		if err != nil {
			return nil, fmt.Errorf("config.LoadJudgments: entry %d (%s vs %s): %w", i, e.A, e.B, err)
		}
		p := oracle.Pair{A: e.A, B: e.B}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("config.LoadJudgments: entry %d: %s vs %s repeated: %w", i, e.A, e.B, ErrInvalid)
		}
		seen[p] = struct{}{}
		out = append(out, oracle.Judgment{A: e.A, B: e.B, Relation: rel})
	}

	return out, nil
}

// SaveJudgments writes js to path, tagged with session.
func SaveJudgments(path, session string, js []oracle.Judgment) error {
	f := JudgmentFile{Session: session, Judgments: make([]JudgmentEntry, len(js))}
	for i, j := range js {
		f.Judgments[i] = JudgmentEntry{A: j.A, B: j.B, Relation: int(j.Relation)}
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("config.SaveJudgments: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config.SaveJudgments: %w", err)
		}
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config.SaveJudgments: %w", err)
	}

	return nil
}

// PairTable indexes js by ordered pair for oracle.NewByPair.
func PairTable(js []oracle.Judgment) map[oracle.Pair]prefmatrix.Relation {
	t := make(map[oracle.Pair]prefmatrix.Relation, len(js))
	for _, j := range js {
		t[oracle.Pair{A: j.A, B: j.B}] = j.Relation
	}

	return t
}
