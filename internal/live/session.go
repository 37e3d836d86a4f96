package live

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/scroll"
)

// session is one mounted page. Its tracker, navigator and all writes to
// the connection are confined to the goroutine running run.
type session struct {
	id       string
	conn     *websocket.Conn
	sections map[string]bool
	logger   *zap.Logger

	window    scroll.Dispatcher
	tracker   *scroll.Tracker
	navigator *scroll.Navigator

	closeOnce sync.Once
}

func newSession(id string, conn *websocket.Conn, sections []string, logger *zap.Logger) *session {
	s := &session{
		id:       id,
		conn:     conn,
		sections: make(map[string]bool, len(sections)),
		logger:   logger.With(zap.String("session", id)),
	}
	for _, sec := range sections {
		s.sections[sec] = true
	}
	s.tracker = scroll.NewTracker(sections, s.sendState)
	s.navigator = scroll.NewNavigator(s, s.tracker)
	return s
}

// run reads client messages until the connection ends. The tracker is
// attached for exactly the lifetime of the loop.
func (s *session) run() {
	defer s.close()

	detach := s.tracker.Attach(&s.window)
	defer detach()

	s.logger.Debug("live session started", zap.Strings("sections", s.tracker.Sections()))
	defer s.logger.Debug("live session ended")

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("live read", zap.Error(err))
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.send(serverMessage{Type: TypeError, Error: "invalid message format"})
			continue
		}

		switch msg.Type {
		case TypeScroll:
			s.window.Dispatch(scroll.Event{Viewport: msg.Viewport, Bounds: bounds(msg.Sections)})
		case TypeNavigate:
			s.navigator.ScrollTo(msg.Section)
		default:
			s.send(serverMessage{Type: TypeError, Error: "unknown message type: " + msg.Type})
		}
	}
}

// Lookup makes the session the navigator's Document: a section exists when
// the page rendered it.
func (s *session) Lookup(id string) (scroll.Element, bool) {
	if !s.sections[id] {
		return nil, false
	}
	return sectionElement{s: s, id: id}, true
}

func (s *session) sendState(st scroll.State) {
	s.send(serverMessage{Type: TypeState, Progress: st.Progress, Active: st.Active})
}

func (s *session) send(msg serverMessage) {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(msg); err != nil {
		s.logger.Debug("live write", zap.Error(err))
	}
}

func (s *session) close() {
	s.closeOnce.Do(func() {
		s.conn.Close()
	})
}

// sectionElement asks the browser to scroll a section into view.
type sectionElement struct {
	s  *session
	id string
}

func (e sectionElement) ScrollIntoView(smooth bool) {
	e.s.send(serverMessage{Type: TypeScrollTo, Section: e.id})
}
