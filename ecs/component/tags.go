package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type HostileTag struct{}

var HostileTagComponent = NewComponent[HostileTag]()
