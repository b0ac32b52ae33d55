package reading

import (
	"context"
	"fmt"
	"strings"
)

// MockInterpreter — детерминированное толкование без обращения к провайдеру,
// для разработки интерфейса
type MockInterpreter struct{}

func (MockInterpreter) Interpret(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	if positions := req.Positions(); positions != nil {
		for i, c := range req.Cards {
			fmt.Fprintf(&b, "**%s: %s%s**\n\n", positions[i], c.Name, shadow(c.Reversed, " (in shadow)"))
			switch i {
			case 0:
				b.WriteString("This card speaks to the foundations you have been building.")
			case 1:
				b.WriteString("Right now you are invited to engage with what is present.")
			default:
				fmt.Fprintf(&b, "Moving forward, %s shows the next step.", c.Name)
			}
			b.WriteString("\n\n")
		}
		b.WriteString("**Synthesis**\n\nThese cards together describe a transformation.")
	} else {
		names := make([]string, len(req.Cards))
		for i, c := range req.Cards {
			names[i] = c.Name + shadow(c.Reversed, " in shadow")
		}
		fmt.Fprintf(&b, "You have drawn %s.", strings.Join(names, ", "))
		for _, c := range req.Cards {
			if c.Reversed {
				b.WriteString(" Reversed cards point inward rather than against you.")
				break
			}
		}
	}
	if req.Question != "" {
		b.WriteString(" Your question already holds part of the answer.")
	}
	return b.String(), nil
}

func shadow(reversed bool, text string) string {
	if reversed {
		return text
	}
	return ""
}
