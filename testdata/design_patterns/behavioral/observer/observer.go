package observer

type Observer interface {
	Notify(event string)
}

type Subject struct {
	observers []Observer
}

func (s *Subject) Attach(o Observer) {
	s.observers = append(s.observers, o)
}

func (s *Subject) Publish(event string) {
	for _, o := range s.observers {
		o.Notify(event)
	}
}
