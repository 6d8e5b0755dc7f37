package numbers

import (
	"github.com/tessellated-io/arrayops/log"
)

// Parser parses integers with a zero fallback and reports every fallback to its logger.
type Parser struct {
	logger *log.Logger
}

func NewParser(logger *log.Logger) *Parser {
	return &Parser{
		logger: logger.ApplyPrefix("[numbers]"),
	}
}

func (p *Parser) ParseInt(input string) int {
	n, ok := ParseLeadingInt(input)
	if !ok {
		p.logger.Debug("unable to parse integer, using zero", "input", input)
		return 0
	}
	return n
}

func (p *Parser) ParseAll(inputs []string) []int {
	result := make([]int, len(inputs))
	for i, input := range inputs {
		result[i] = p.ParseInt(input)
	}
	return result
}
