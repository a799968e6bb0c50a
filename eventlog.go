package abiview

// maxTopics is the EVM's fixed limit: one event signature topic plus up to
// three indexed arguments (spec §4.I).
const maxTopics = 4

// EventLogView borrows an event log's topics and data region without
// copying either. Every topic is exactly one 32-byte word; the data region
// is ABI-encoded the same way a function's non-indexed arguments are.
type EventLogView struct {
	topics [][]byte
	data   []byte
}

// NewEventLogView validates topic count and width and constructs a view
// over the borrowed topics and data. Each entry in topics must be exactly
// 32 bytes; a log with more than 4 topics or any non-32-byte topic is
// malformed input, not a representable EVM log.
func NewEventLogView(topics [][]byte, data []byte) (EventLogView, error) {
	if len(topics) > maxTopics {
		return EventLogView{}, newErr(InvalidLength, "event log has more than 4 topics")
	}
	for _, t := range topics {
		if len(t) != WordSize {
			return EventLogView{}, newErr(InvalidLength, "event log topic is not 32 bytes")
		}
	}
	return EventLogView{topics: topics, data: data}, nil
}

// TopicCount returns the number of topics present (0-4).
func (v EventLogView) TopicCount() int { return len(v.topics) }

// Data returns the borrowed, ABI-encoded non-indexed argument region.
func (v EventLogView) Data() []byte { return v.data }

func (v EventLogView) topic(i int) ([]byte, error) {
	if i < 0 || i >= len(v.topics) {
		return nil, newErr(OutOfBounds, "event log topic index out of range")
	}
	return v.topics[i], nil
}

// ReadTopicUint256 decodes topic i as a uint256.
func (v EventLogView) ReadTopicUint256(i int) (U256View, error) {
	w, e := v.topic(i)
	if e != nil {
		return U256View{}, e
	}
	return ReadUint256(w, 0)
}

// ReadTopicInt256 decodes topic i as an int256.
func (v EventLogView) ReadTopicInt256(i int) (I256View, error) {
	w, e := v.topic(i)
	if e != nil {
		return I256View{}, e
	}
	return ReadInt256(w, 0)
}

// ReadTopicAddress decodes topic i as an address.
func (v EventLogView) ReadTopicAddress(i int) (AddressView, error) {
	w, e := v.topic(i)
	if e != nil {
		return AddressView{}, e
	}
	return ReadAddress(w, 0)
}

// ReadTopicBool decodes topic i as a bool.
func (v EventLogView) ReadTopicBool(i int) (BoolView, error) {
	w, e := v.topic(i)
	if e != nil {
		return BoolView{}, e
	}
	return ReadBool(w, 0)
}
