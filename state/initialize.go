package state

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cssed/color"
	"cssed/compact"
	"cssed/syntax"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
		RunID: uuid.New(),
	}
}

// Prepare builds editing cores according to loaded configuration. Must be
// called after Cfg and Log are set.
func (e *LocalEnv) Prepare() error {
	if e.Cfg == nil {
		return errors.New("configuration is not loaded")
	}
	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}

	set, err := e.Cfg.Vocabulary.Prepare()
	if err != nil {
		return fmt.Errorf("unable to prepare vocabularies: %w", err)
	}
	conv := color.NewConverter(log, e.Cfg.Color.OutOfRange)
	cls, err := syntax.NewClassifier(log, set, conv)
	if err != nil {
		return fmt.Errorf("unable to prepare classifier: %w", err)
	}
	rw, err := compact.NewDefault(log, compact.WithPlaceholderCheck(e.Cfg.Compact.CheckPlaceholders))
	if err != nil {
		return fmt.Errorf("unable to prepare rewriter: %w", err)
	}

	e.Vocab, e.Converter, e.Classifier, e.Rewriter = set, conv, cls, rw
	log.Debug("Editing cores prepared",
		zap.Stringer("run", e.RunID),
		zap.Int("keywords", len(set.AllKeywords())),
		zap.Stringer("out_of_range", conv.Policy()))
	return nil
}
