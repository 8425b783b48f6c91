package proc

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"

	"github.com/Irfan-005/Bongosorous/sys"
)

// SweepInterval is how often the reminder sweep polls for due rows.
const SweepInterval = 5 * time.Second

// ReminderSender delivers a claimed reminder to its destination.
type ReminderSender interface {
	Send(ctx context.Context, r *sys.Reminder) error
}

var reminderSweepRunning int32

func init() {
	sys.OnClientReady(func(ctx context.Context, client *bot.Client) {
		sys.RegisterDaemon(sys.LogReminder, func(ctx context.Context) (bool, func(), func()) {
			return StartReminderSweep(ctx, &restSender{client: client})
		})
	})
}

// StartReminderSweep starts the reminder sweep daemon. Delivery is
// at-most-once: rows are consumed by the claim before the send attempt,
// so a failed send is logged and dropped, never retried.
func StartReminderSweep(ctx context.Context, sender ReminderSender) (bool, func(), func()) {
	if !atomic.CompareAndSwapInt32(&reminderSweepRunning, 0, 1) {
		return false, nil, nil
	}

	return true, func() {
			ticker := time.NewTicker(SweepInterval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					runSweep(ctx, sender, time.Now().UTC())
				case <-ctx.Done():
					return
				}
			}
		}, func() {
			sys.LogReminder(sys.MsgReminderShutdown)
		}
}

// runSweep claims and delivers every reminder due at or before now. Any
// panic is contained here so the sweep loop itself never dies.
func runSweep(parentCtx context.Context, sender ReminderSender, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			sys.LogError("Recovered from panic in reminder sweep: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(parentCtx, 30*time.Second)
	defer cancel()

	reminders, err := sys.ClaimDueReminders(ctx, now)
	if err != nil {
		sys.LogReminder(sys.MsgReminderFailedToQueryDue, err)
		return
	}

	for _, r := range reminders {
		if err := sender.Send(ctx, r); err != nil {
			sys.LogReminder(sys.MsgReminderFailedToSend, r.ID, err)
			continue
		}
		sys.LogReminder(sys.MsgReminderDelivered, r.ID, r.UserID)
	}
}

// restSender delivers reminders over the Discord REST API.
type restSender struct {
	client *bot.Client
}

func (s *restSender) Send(ctx context.Context, r *sys.Reminder) error {
	if r.ChannelID == 0 || r.UserID == 0 {
		return fmt.Errorf("invalid ids for reminder %d", r.ID)
	}

	content := fmt.Sprintf("<@%s> ⏰ **Reminder:** %s", r.UserID, r.Message)
	_, err := s.client.Rest.CreateMessage(r.ChannelID, discord.NewMessageCreateBuilder().
		SetContent(content).
		SetAllowedMentions(&discord.AllowedMentions{Users: []snowflake.ID{r.UserID}}).
		Build(), rest.WithCtx(ctx))
	return err
}
