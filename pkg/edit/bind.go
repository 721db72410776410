package edit

// ErrorHandler receives mutation failures raised from callbacks that cannot
// return errors themselves.
type ErrorHandler func(error)

// Callbacks is the add/remove pair handed to section layouts.
type Callbacks struct {
	OnAdd    func()
	OnRemove func(id string)
}

// Bind adapts a session list to the callback shape layouts expect. A nil
// session, including a nil *MemorySession, yields nil callbacks, which
// layouts treat as read-only wiring.
func Bind(session Session, listPath string, onError ErrorHandler) Callbacks {
	if isNil(session) {
		return Callbacks{}
	}
	report := func(err error) {
		if err != nil && onError != nil {
			onError(err)
		}
	}
	return Callbacks{
		OnAdd: func() {
			_, err := session.AddItem(listPath)
			report(err)
		},
		OnRemove: func(id string) {
			report(session.RemoveItem(listPath, id))
		},
	}
}

func isNil(session Session) bool {
	if session == nil {
		return true
	}
	ms, ok := session.(*MemorySession)
	return ok && ms == nil
}
