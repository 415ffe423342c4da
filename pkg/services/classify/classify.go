// Package classify maps campaign names to teams with an ordered list
// of keyword rules, evaluated first-match-wins.
package classify

import (
	"strings"

	"github.com/bi-tools/campaign-costs/pkg/models/domain"
	"github.com/bi-tools/campaign-costs/pkg/services/normalize"
)

type rule struct {
	keywords []string
	team     domain.TeamTag
}

// Rule order is load-bearing: "cp" and "app" are broad substrings and
// must only be consulted after the more specific families. Matching is
// substring, not token, so any occurrence inside a longer word counts.
// The accented keyword variants are redundant after folding but kept
// so the rule table reads as the business states it.
var rules = []rule{
	{[]string{"iniciativaprivada", "iniciativa privada", "clt"}, domain.TeamCLT},
	{[]string{"outbound", "aquisicao", "aquisição"}, domain.TeamOutbound},
	{[]string{"ativacao", "csativacao", "ativação"}, domain.TeamAtivacao},
	{[]string{"csapp", "app", "aplicativo"}, domain.TeamCSApp},
	{[]string{"cp", "inss", "cscp"}, domain.TeamCP},
}

// Team classifies a campaign name. The name is folded before matching,
// so case and accents never affect the outcome. Names no rule matches
// fall through to TeamOutros.
func Team(campaign string) domain.TeamTag {
	folded := normalize.Fold(campaign)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(folded, kw) {
				return r.team
			}
		}
	}
	return domain.TeamOutros
}
