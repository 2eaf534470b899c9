package conversation

// Lookup is the outcome of resolving a command name: either a reply to send
// or nothing at all.
type Lookup struct {
	reply string
	found bool
}

// NotFound means no handler produced a reply.
var NotFound = Lookup{}

func Found(reply string) Lookup {
	return Lookup{reply: reply, found: true}
}

func (l Lookup) Reply() (string, bool) {
	return l.reply, l.found
}
