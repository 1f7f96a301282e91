package engine

import (
	"fmt"
	"sort"
)

// BuildDocument assembles one complete output document: for every option
// the job declares, the combination's value when the option is enumerated,
// otherwise a fallback value per the job's behavior. Fixed metadata
// entries follow the declared options, sorted by key. The record name is
// the game name suffixed with the 1-based document index.
func BuildDocument(job *GameJob, index int, combo Combination) *Document {
	name := fmt.Sprintf("%s%d", job.Game, index)
	doc := &Document{
		Game:        job.Game,
		Name:        name,
		Description: name,
		Options:     make([]OptionValue, 0, len(job.Options)+len(job.Fixed)),
	}

	declared := make(map[string]bool, len(job.Options))
	for i := range job.Options {
		opt := &job.Options[i]
		declared[opt.Name] = true
		if value, ok := combo[opt.Name]; ok {
			doc.Options = append(doc.Options, OptionValue{Name: opt.Name, Value: value})
			continue
		}
		doc.Options = append(doc.Options, OptionValue{Name: opt.Name, Value: Fill(opt, job.Behavior)})
	}

	// A fixed key naming a declared option would duplicate its entry;
	// the declared option wins.
	fixedKeys := make([]string, 0, len(job.Fixed))
	for k := range job.Fixed {
		if declared[k] {
			continue
		}
		fixedKeys = append(fixedKeys, k)
	}
	sort.Strings(fixedKeys)
	for _, k := range fixedKeys {
		doc.Options = append(doc.Options, OptionValue{Name: k, Value: job.Fixed[k]})
	}

	return doc
}
