package domain

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCompleted RequestStatus = "completed"
)

// Request is a borrow request against a book. OwnerID is snapshotted from the
// book at creation time and never follows later ownership changes.
type Request struct {
	ID            int32         `json:"id"`
	BookID        int32         `json:"bookId"`
	RequesterID   int32         `json:"requesterId"`
	OwnerID       int32         `json:"ownerId"`
	Status        RequestStatus `json:"status"`
	MeetupDetails string        `json:"meetupDetails"`
	Book          *Book         `json:"book,omitempty"`      // Populated on detail reads
	Requester     *User         `json:"requester,omitempty"` // Populated on detail reads
	CreatedOn     string        `json:"createdOn"`
	UpdatedOn     string        `json:"updatedOn"`
}
