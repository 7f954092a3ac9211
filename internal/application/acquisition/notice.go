package acquisition

import (
	"time"

	"github.com/turtacn/DevFolio/internal/domain/portfolio"
	ptypes "github.com/turtacn/DevFolio/pkg/types/portfolio"
)

// DefaultNoticeDuration is how long a notice stays visible after the attempt
// that produced it.
const DefaultNoticeDuration = 10 * time.Second

// Notice is the dismissible banner shown after a degraded attempt.  Online
// distinguishes a connection error with local data from offline demo mode.
type Notice struct {
	Online bool `json:"online"`
	portfolio.NoticeText
	Detail    string    `json:"detail,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// noticeFor returns the notice for st at now, or nil when none is due.
func noticeFor(st State, lang ptypes.Lang, now time.Time, d time.Duration) *Notice {
	if st.Loading || !st.Completed() || st.NoticeDismissed {
		return nil
	}
	if st.Error == "" && st.IsOnline {
		return nil
	}
	expires := st.CompletedAt.Add(d)
	if !now.Before(expires) {
		return nil
	}
	return &Notice{
		Online:     st.IsOnline,
		NoticeText: portfolio.NoticeLabels(lang, st.IsOnline),
		Detail:     st.Error,
		ExpiresAt:  expires,
	}
}
