package naming

import (
	"log/slog"
	"time"

	"github.com/contre95/namer/src/features/config"
	"github.com/contre95/namer/src/names"
)

// Strategy names the shape a name was parsed as.
type Strategy string

const (
	StrategyPart  Strategy = "part"
	StrategyDate  Strategy = "date"
	StrategyPlain Strategy = "plain"
)

// Result is a name parsed by whichever strategy matched. Parts is NoParts
// unless Strategy is StrategyPart; Date and Precision are only set for
// StrategyDate.
type Result struct {
	Input     string
	Strategy  Strategy
	Parts     names.Parts
	Date      time.Time
	Precision names.Precision
	Name      names.Name[names.Attributes]
}

// Format writes the result back out under r.
func (res Result) Format(r *names.Rules) string {
	switch res.Strategy {
	case StrategyPart:
		return names.PartName[names.Attributes]{Parts: res.Parts, Name: res.Name}.Format(r)
	case StrategyDate:
		return names.DateName[names.Attributes]{Date: res.Date, Precision: res.Precision, Name: res.Name}.Format(r)
	default:
		return res.Name.Format(r)
	}
}

// Canonical is Format with an attribute block that sets nothing dropped, so
// "T{x=1}" and "T{}" both come out as "T".
func (res Result) Canonical(r *names.Rules) string {
	res.Name.Attributes = res.Name.Attributes.Compact()
	return res.Format(r)
}

// Outcome is the result of canonicalizing one input.
type Outcome struct {
	Input  string
	Output string
	Err    error
}

// Service parses and canonicalizes names with the configured rules.
type Service struct {
	configManager *config.Manager
	logger        *slog.Logger
	metrics       *Metrics
}

// NewService creates a new naming service. logger and metrics may be nil.
func NewService(cfgManager *config.Manager, logger *slog.Logger, metrics *Metrics) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		configManager: cfgManager,
		logger:        logger,
		metrics:       metrics,
	}
}

// Rules returns the rule set the service currently parses with.
func (s *Service) Rules() *names.Rules {
	if s.configManager == nil {
		return names.DefaultRules
	}
	return s.configManager.Rules()
}

// Parse picks a strategy from the shape of the input: a part prefix, then a
// leading date, then a plain name.
func (s *Service) Parse(input string) (Result, error) {
	r := s.Rules()
	res := Result{Input: input, Strategy: s.strategyFor(input, r), Parts: names.NoParts}

	var err error
	switch res.Strategy {
	case StrategyPart:
		var n names.PartName[names.Attributes]
		n, err = names.ParsePartName(input, r, names.ParseAttributes)
		res.Parts, res.Name = n.Parts, n.Name
	case StrategyDate:
		var n names.DateName[names.Attributes]
		n, err = names.ParseDateName(input, r, names.ParseAttributes)
		res.Date, res.Precision, res.Name = n.Date, n.Precision, n.Name
	default:
		res.Name, err = names.Parse(input, r)
	}
	s.metrics.observe(res.Strategy, err)
	if err != nil {
		s.logger.Warn("Failed to parse name", "input", input, "strategy", res.Strategy, "error", err)
		return Result{}, err
	}
	s.logger.Debug("Parsed name", "input", input, "strategy", res.Strategy, "title", res.Name.Title)
	return res, nil
}

// strategyFor only picks StrategyDate when the date fragment is followed by
// a boundary, so titles like "1984s Hits" stay plain.
func (s *Service) strategyFor(input string, r *names.Rules) Strategy {
	d := r.Delimiters()
	if len(input) > 1 && input[0] == d.Part && isDigit(input[1]) {
		return StrategyPart
	}
	if len(input) < 4 || !isDigit(input[0]) || !isDigit(input[1]) || !isDigit(input[2]) || !isDigit(input[3]) {
		return StrategyPlain
	}
	_, n, err := names.ParseDateTime(input, r)
	if err != nil {
		s.logger.Debug("Leading digits are not a date", "input", input, "error", err)
		return StrategyPlain
	}
	if n == len(input) {
		return StrategyDate
	}
	switch input[n] {
	case d.Title, d.AttributeStart, d.Suffix:
		return StrategyDate
	}
	return StrategyPlain
}

// Canonicalize parses input and formats it back with the current rules.
// Canonicalizing a canonical name returns it unchanged.
func (s *Service) Canonicalize(input string) (string, error) {
	res, err := s.Parse(input)
	if err != nil {
		return "", err
	}
	return res.Canonical(s.Rules()), nil
}

// CanonicalizeAll canonicalizes every input, keeping going past failures.
func (s *Service) CanonicalizeAll(inputs []string) []Outcome {
	out := make([]Outcome, 0, len(inputs))
	failed := 0
	for _, in := range inputs {
		canon, err := s.Canonicalize(in)
		if err != nil {
			failed++
		}
		out = append(out, Outcome{Input: in, Output: canon, Err: err})
	}
	s.logger.Info("Canonicalized names", "total", len(inputs), "failed", failed)
	return out
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
