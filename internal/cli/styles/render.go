package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/shadowflee/fluxer/internal/domain/entity"
)

// Mark renders a check or cross.
func (t *Theme) Mark(ok bool) string {
	if ok {
		return t.SuccessStyle.Render(IconCheck)
	}
	return t.ErrorStyle.Render(IconX)
}

// OK renders a one-line success message.
func (t *Theme) OK(format string, args ...any) string {
	return t.Mark(true) + " " + fmt.Sprintf(format, args...)
}

// Fail renders a one-line error message.
func (t *Theme) Fail(err error) string {
	return t.Mark(false) + " " + t.ErrorStyle.Render(err.Error())
}

// Field renders "key: value" with a padded, muted key.
func (t *Theme) Field(key, value string) string {
	return t.Subtle.Render(fmt.Sprintf("%-14s", key+":")) + " " + t.Normal.Render(value)
}

// Decision renders the outcome of a gate check. ok tells whether the outcome
// lets the subject through.
func (t *Theme) Decision(gate, subject, outcome string, ok bool) string {
	badge := t.BadgeMuted.Render(outcome)
	if ok {
		badge = t.Badge.Render(outcome)
	}
	return fmt.Sprintf("%s %s %s %s",
		t.Mark(ok),
		t.Subtitle.Render(gate),
		t.Normal.Render(subject),
		badge)
}

// Channels renders the notification channel list, marking the active one.
func (t *Theme) Channels(channels []entity.NotificationChannel, activeID string) string {
	if len(channels) == 0 {
		return t.Subtle.Render("No notification channels.")
	}
	var b strings.Builder
	b.WriteString(t.BoxHeader.Render(IconBell + " Notification channels"))
	b.WriteString("\n")
	for _, ch := range channels {
		cursor := "  "
		style := t.ListItem
		if ch.ID == activeID {
			cursor = t.Highlight.Render(IconCursor) + " "
			style = t.ListItemSelected
		}
		sound := ch.SoundRef
		switch {
		case ch.Silent:
			sound = "silent"
		case sound == "":
			sound = "system default"
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			style.Render(fmt.Sprintf("%-16s", ch.ID)),
			"  ",
			t.Normal.Render(ch.DisplayName),
			"  ",
			t.Subtle.Render(sound),
		)
		b.WriteString(cursor + line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Grants renders stored permission answers.
func (t *Theme) Grants(records []*entity.GrantRecord) string {
	if len(records) == 0 {
		return t.Subtle.Render("No permissions recorded.")
	}
	var b strings.Builder
	for _, r := range records {
		icon := IconMic
		if r.Grant == entity.GrantCamera {
			icon = IconVideo
		}
		state := "denied"
		if r.Granted {
			state = "granted"
		}
		fmt.Fprintf(&b, "%s %s %-10s %s %s\n",
			t.Mark(r.Granted),
			icon,
			string(r.Grant),
			t.Normal.Render(state),
			t.Subtle.Render(time.Unix(r.UpdatedAt, 0).Local().Format(time.DateTime)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// PurgeTargets renders what a purge would remove.
func (t *Theme) PurgeTargets(targets []entity.PurgeTarget) string {
	var b strings.Builder
	b.WriteString(t.BoxHeader.Render(IconTrash + " Purge targets"))
	b.WriteString("\n")
	for _, target := range targets {
		if !target.Exists {
			continue
		}
		fmt.Fprintf(&b, "  %s %-40s %s %s\n",
			purgeIcon(target.Type),
			target.Description,
			t.Subtle.Render(FormatBytes(target.Size)),
			t.Subtle.Render(target.Path))
	}
	return strings.TrimRight(b.String(), "\n")
}

func purgeIcon(tt entity.PurgeTargetType) string {
	switch tt {
	case entity.PurgeTargetConfig:
		return IconConfig
	case entity.PurgeTargetData:
		return IconDatabase
	case entity.PurgeTargetState:
		return IconLogs
	case entity.PurgeTargetCache:
		return IconCache
	case entity.PurgeTargetDesktopFile:
		return IconDesktop
	default:
		return IconFolder
	}
}

// FormatBytes formats a size with a binary unit.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
