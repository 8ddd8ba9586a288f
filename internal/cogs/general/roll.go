package general

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/keshon/better-help/internal/core"
	"github.com/keshon/better-help/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

const (
	maxDice  = 100
	maxSides = 1000
)

var (
	tokenRegex = regexp.MustCompile(`(?i)(\d*d\d+|\d+|[+\-*/])`)
	diceRegex  = regexp.MustCompile(`(?i)^(\d*)d(\d+)$`)
	validOps   = map[string]bool{"+": true, "-": true, "*": true, "/": true}
)

var (
	errEmptyFormula   = errors.New("can't parse your formula. Try something like `2d6+1d4*2-3`")
	errMissingOperand = errors.New("can't multiply or divide by nothing")
	errDivideByZero   = errors.New("can't divide by zero")
)

type term struct {
	value int
	desc  string
	op    string
}

// Roll is an evaluated dice formula.
type Roll struct {
	Formula string
	Details string
	Total   int
}

func (c *Cog) rollCommand() cmd.Command {
	return cmd.Define(cmd.Definition{
		Name:        "roll",
		Aliases:     []string{"dice"},
		Description: "Roll dice like `2d20+1d6-2`",
		Help: "Rolls dice and does the maths.\n" +
			"Dice are written NdM, numbers and + - * / are allowed.",
		Params: []cmd.Param{
			{Name: "formula", Kind: cmd.Remainder, Doc: "Supports `2d6+1d4*2-3` and similar math"},
		},
		Run: func(_ context.Context, inv *cmd.Invocation) error {
			hc, err := invocationContext(inv)
			if err != nil {
				return err
			}
			roll, err := c.evaluate(strings.Join(inv.Args, ""))
			if err != nil {
				return hc.Send(&discordgo.MessageEmbed{
					Description: capitalize(err.Error()),
					Color:       core.AlertColor,
				})
			}
			return hc.Send(&discordgo.MessageEmbed{
				Title: "Dice Roll",
				Description: fmt.Sprintf("**User Input**:\t`%s`\n**Calculation**:\t%s\n**Result**:\t**%d**",
					roll.Formula, roll.Details, roll.Total),
				Color: core.EmbedColor,
			})
		},
	})
}

// evaluate rolls formula. Multiplication and division bind tighter than
// addition and subtraction; division truncates.
func (c *Cog) evaluate(formula string) (Roll, error) {
	formula = strings.ReplaceAll(formula, " ", "")
	tokens := tokenRegex.FindAllString(formula, -1)
	if len(tokens) == 0 {
		return Roll{}, errEmptyFormula
	}

	var terms []term
	op := "+"
	for _, token := range tokens {
		if validOps[token] {
			op = token
			continue
		}
		val, desc, err := c.evaluateToken(token)
		if err != nil {
			return Roll{}, fmt.Errorf("failed to evaluate `%s`: %w", token, err)
		}
		terms = append(terms, term{value: val, desc: desc, op: op})
	}

	var merged []term
	for _, t := range terms {
		if t.op != "*" && t.op != "/" {
			merged = append(merged, t)
			continue
		}
		if len(merged) == 0 {
			return Roll{}, errMissingOperand
		}
		prev := merged[len(merged)-1]
		merged = merged[:len(merged)-1]

		val := prev.value * t.value
		if t.op == "/" {
			if t.value == 0 {
				return Roll{}, errDivideByZero
			}
			val = prev.value / t.value
		}
		merged = append(merged, term{
			value: val,
			desc:  fmt.Sprintf("%s %s %s", prev.desc, t.op, t.desc),
			op:    prev.op,
		})
	}

	total := 0
	var details []string
	for _, t := range merged {
		if len(details) > 0 {
			details = append(details, " "+t.op+" ")
		}
		details = append(details, t.desc)
		if t.op == "-" {
			total -= t.value
		} else {
			total += t.value
		}
	}
	return Roll{Formula: formula, Details: strings.Join(details, ""), Total: total}, nil
}

func (c *Cog) evaluateToken(token string) (int, string, error) {
	m := diceRegex.FindStringSubmatch(token)
	if m == nil {
		num, err := strconv.Atoi(token)
		if err != nil {
			return 0, "", errors.New("not a number or dice")
		}
		return num, fmt.Sprintf("`%d`", num), nil
	}

	count := 1
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			return 0, "", errors.New("invalid dice count")
		}
		count = n
	}
	sides, err := strconv.Atoi(m[2])
	if err != nil || sides < 2 {
		return 0, "", errors.New("invalid dice sides")
	}
	if count > maxDice || sides > maxSides {
		return 0, "", fmt.Errorf("too big. max %d dice, %d sides", maxDice, maxSides)
	}

	sum := 0
	rolls := make([]string, 0, count)
	for i := 0; i < count; i++ {
		r := c.intn(sides) + 1
		sum += r
		rolls = append(rolls, strconv.Itoa(r))
	}
	return sum, fmt.Sprintf("`%s` [%s]", token, strings.Join(rolls, ", ")), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
