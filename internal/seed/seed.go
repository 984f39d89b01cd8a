// Package seed loads a YAML roster of moves, combatants and trainers into the registry
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/battle-api/internal/errors"
	"github.com/KirkDiggler/battle-api/internal/orchestrators/registry"
)

// File is the document layout. Combatants reference moves by name and trainers
// reference combatants by name; names are unique per kind within a file.
type File struct {
	Moves      []Move      `yaml:"moves"`
	Combatants []Combatant `yaml:"combatants"`
	Trainers   []Trainer   `yaml:"trainers"`
}

// Move is a catalog entry
type Move struct {
	Name       string `yaml:"name"`
	Damage     int    `yaml:"damage"`
	UsageLimit int    `yaml:"usage_limit"`
}

// Combatant is a creature and the names of the moves it learns
type Combatant struct {
	Name      string   `yaml:"name"`
	LifePoint int      `yaml:"life_point"`
	Moves     []string `yaml:"moves"`
}

// Trainer is a trainer and its roster by combatant name. A name may repeat.
type Trainer struct {
	Name       string   `yaml:"name"`
	Combatants []string `yaml:"combatants"`
}

// Result counts what Apply created
type Result struct {
	Moves      int
	Combatants int
	Trainers   int
}

// Load reads and parses a seed file
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a seed document and checks its references
func Parse(raw []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse seed file")
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks for duplicate names and dangling references. Field ranges are left to
// the registry.
func (f *File) Validate() error {
	vb := errors.NewValidationBuilder()

	moveNames := make(map[string]bool, len(f.Moves))
	for i, m := range f.Moves {
		field := fmt.Sprintf("moves[%d]", i)
		errors.ValidateRequired(field+".name", m.Name, vb)
		if moveNames[m.Name] {
			vb.Fieldf(field+".name", "duplicate move %q", m.Name)
		}
		moveNames[m.Name] = true
	}

	combatantNames := make(map[string]bool, len(f.Combatants))
	for i, c := range f.Combatants {
		field := fmt.Sprintf("combatants[%d]", i)
		errors.ValidateRequired(field+".name", c.Name, vb)
		if combatantNames[c.Name] {
			vb.Fieldf(field+".name", "duplicate combatant %q", c.Name)
		}
		combatantNames[c.Name] = true

		for _, name := range c.Moves {
			if !moveNames[name] {
				vb.Fieldf(field+".moves", "unknown move %q", name)
			}
		}
	}

	for i, t := range f.Trainers {
		field := fmt.Sprintf("trainers[%d]", i)
		errors.ValidateRequired(field+".name", t.Name, vb)
		for _, name := range t.Combatants {
			if !combatantNames[name] {
				vb.Fieldf(field+".combatants", "unknown combatant %q", name)
			}
		}
	}

	return vb.Build()
}

// Apply creates everything in the file through the registry, in file order
func Apply(ctx context.Context, svc registry.Service, f *File) (*Result, error) {
	if svc == nil {
		return nil, errors.InvalidArgument("registry service is required")
	}
	if f == nil {
		return nil, errors.InvalidArgument("seed file is required")
	}

	result := &Result{}

	moveIDs := make(map[string]string, len(f.Moves))
	for _, m := range f.Moves {
		out, err := svc.CreateMove(ctx, &registry.CreateMoveInput{
			Name:       m.Name,
			Damage:     m.Damage,
			UsageLimit: m.UsageLimit,
		})
		if err != nil {
			return result, errors.Wrapf(err, "seed move %s", m.Name)
		}
		moveIDs[m.Name] = out.Move.ID
		result.Moves++
	}

	combatantIDs := make(map[string]string, len(f.Combatants))
	for _, c := range f.Combatants {
		out, err := svc.CreateCombatant(ctx, &registry.CreateCombatantInput{
			Name:      c.Name,
			LifePoint: c.LifePoint,
		})
		if err != nil {
			return result, errors.Wrapf(err, "seed combatant %s", c.Name)
		}
		id := out.Combatant.ID
		combatantIDs[c.Name] = id
		result.Combatants++

		for _, moveName := range c.Moves {
			moveID, ok := moveIDs[moveName]
			if !ok {
				return result, errors.NotFoundf("seed combatant %s: move %s not found", c.Name, moveName)
			}
			if _, err := svc.LearnMove(ctx, &registry.LearnMoveInput{CombatantID: id, MoveID: moveID}); err != nil {
				return result, errors.Wrapf(err, "seed combatant %s learning %s", c.Name, moveName)
			}
		}
	}

	for _, t := range f.Trainers {
		out, err := svc.CreateTrainer(ctx, &registry.CreateTrainerInput{Name: t.Name})
		if err != nil {
			return result, errors.Wrapf(err, "seed trainer %s", t.Name)
		}
		result.Trainers++

		for _, combatantName := range t.Combatants {
			combatantID, ok := combatantIDs[combatantName]
			if !ok {
				return result, errors.NotFoundf("seed trainer %s: combatant %s not found", t.Name, combatantName)
			}
			_, err := svc.AddToRoster(ctx, &registry.AddToRosterInput{
				TrainerID:   out.Trainer.ID,
				CombatantID: combatantID,
			})
			if err != nil {
				return result, errors.Wrapf(err, "seed trainer %s roster", t.Name)
			}
		}
	}

	slog.Info("Seed applied",
		"moves", result.Moves,
		"combatants", result.Combatants,
		"trainers", result.Trainers)

	return result, nil
}
