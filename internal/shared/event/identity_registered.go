package event

const IdentityRegisteredDestination string = "identity_registered"

type IdentityRegisteredMessage struct {
	IdentityID int64  `json:"identity_id"`
	Phone      string `json:"phone"`
}
