package portrait

import (
	"fmt"
	"strings"
)

// PromptInput is the character snapshot a portrait is drawn from
type PromptInput struct {
	Name           string
	Gender         string
	Ancestry       string
	Class          string
	Deity          string
	Level          int
	HP             int
	MaxHP          int
	Equipped       []string
	PreparedSpells int
}

// Condition buckets the hit point fraction
func Condition(hp, maxHP int) string {
	if maxHP <= 0 {
		return "healthy"
	}

	fraction := float64(hp) / float64(maxHP)
	switch {
	case fraction >= 0.75:
		return "healthy"
	case fraction >= 0.4:
		return "wounded"
	case fraction > 0.1:
		return "badly wounded"
	default:
		return "near death"
	}
}

var conditionDetail = map[string]string{
	"healthy":       "standing tall and unhurt",
	"wounded":       "bearing fresh cuts and bruises",
	"badly wounded": "bloodied and leaning on their shield",
	"near death":    "barely standing, clutching a grievous wound",
}

// BuildPrompt describes the character for the image model
func BuildPrompt(in PromptInput) string {
	var b strings.Builder

	subject := strings.TrimSpace(strings.Join([]string{in.Gender, in.Ancestry, in.Class}, " "))
	if subject == "" {
		subject = "adventurer"
	}
	fmt.Fprintf(&b, "Fantasy character portrait of %s", subject)
	if in.Name != "" {
		fmt.Fprintf(&b, " named %s", in.Name)
	}
	if in.Deity != "" {
		fmt.Fprintf(&b, ", devoted to %s", in.Deity)
	}
	b.WriteString(". ")

	fmt.Fprintf(&b, "%s, %s. ", levelDescription(in.Level), conditionDetail[Condition(in.HP, in.MaxHP)])

	if len(in.Equipped) > 0 {
		fmt.Fprintf(&b, "Wearing and wielding: %s. ", strings.Join(in.Equipped, ", "))
	}

	switch {
	case in.PreparedSpells >= 10:
		b.WriteString("Divine power crackles visibly around them. ")
	case in.PreparedSpells > 0:
		b.WriteString("A faint holy glow surrounds their hands. ")
	}

	b.WriteString("Painterly style, dramatic lighting, no text.")
	return b.String()
}

func levelDescription(level int) string {
	switch {
	case level >= 17:
		return "A legendary champion"
	case level >= 11:
		return "A renowned hero"
	case level >= 5:
		return "A seasoned adventurer"
	default:
		return "A fledgling adventurer"
	}
}
