package domain

// Status says whether the rules of a group are merged into the hosts file.
type Status string

const (
	StatusOn  Status = "ON"
	StatusOff Status = "OFF"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusOn, StatusOff:
		return true
	}
	return false
}

// Lifecycle is the soft-delete state of a group. Deleted is terminal.
type Lifecycle string

const (
	LifecycleActive  Lifecycle = "ACTIVE"
	LifecycleDeleted Lifecycle = "DELETED"
)

func (l Lifecycle) String() string { return string(l) }

func (l Lifecycle) IsValid() bool {
	switch l {
	case LifecycleActive, LifecycleDeleted:
		return true
	}
	return false
}

// LifecycleFromFlag maps the persisted isDelete flag onto a Lifecycle.
func LifecycleFromFlag(deleted bool) Lifecycle {
	if deleted {
		return LifecycleDeleted
	}
	return LifecycleActive
}
