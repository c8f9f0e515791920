package latexhooks

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// RuleFile is the YAML schema for spelling rule files:
//
//	emph: ["et al."]
//	patterns:
//	  - name: dataset
//	    regex: "[Dd]ata ?[Ss]ets?"
type RuleFile struct {
	Emph     []string `yaml:"emph"`
	Patterns []struct {
		Name  string `yaml:"name"`
		Regex string `yaml:"regex"`
	} `yaml:"patterns"`
}

// LoadRules reads spelling rules from the YAML file at path.
func LoadRules(path string) ([]SpellingRule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading rule file")
	}
	rules, err := ParseRules(raw)
	return rules, errors.Wrapf(err, "rule file %s", path)
}

// ParseRules builds the rules of a RuleFile document.
func ParseRules(raw []byte) ([]SpellingRule, error) {
	var rf RuleFile
	if err := yaml.Unmarshal(raw, &rf); err != nil {
		return nil, errors.Wrap(err, "parsing rules")
	}
	var rules []SpellingRule
	for _, p := range rf.Emph {
		rules = append(rules, EmphRule(p))
	}
	for _, p := range rf.Patterns {
		r, err := RegexRule(p.Name, p.Regex)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}
