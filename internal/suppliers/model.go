package suppliers

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attachment is a named reference to an uploaded file, held by value
// inside the supplier document. Deleting a supplier does not delete the
// underlying file.
type Attachment struct {
	Name string `bson:"name" json:"name"`
	URL  string `bson:"url" json:"url"`
}

// Supplier is a vendor record stored as a loosely-typed document in the
// suppliers collection. Company name, vendor name and primary email are
// required at creation; everything else is optional and no field carries
// a uniqueness constraint.
type Supplier struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CompanyName    string             `bson:"companyName" json:"companyName"`
	VendorName     string             `bson:"vendorName" json:"vendorName"`
	PrimaryPhone   string             `bson:"primaryPhone,omitempty" json:"primaryPhone,omitempty"`
	SecondaryPhone string             `bson:"secondaryPhone,omitempty" json:"secondaryPhone,omitempty"`
	PrimaryEmail   string             `bson:"primaryEmail" json:"primaryEmail"`
	SecondaryEmail string             `bson:"secondaryEmail,omitempty" json:"secondaryEmail,omitempty"`
	PAN            string             `bson:"pan,omitempty" json:"pan,omitempty"`
	GSTNumber      string             `bson:"gstNumber,omitempty" json:"gstNumber,omitempty"`
	SupplierType   string             `bson:"supplierType,omitempty" json:"supplierType,omitempty"`
	Category       string             `bson:"category,omitempty" json:"category,omitempty"`
	Website        string             `bson:"website,omitempty" json:"website,omitempty"`
	AddressLine1   string             `bson:"addressLine1,omitempty" json:"addressLine1,omitempty"`
	AddressLine2   string             `bson:"addressLine2,omitempty" json:"addressLine2,omitempty"`
	District       string             `bson:"district,omitempty" json:"district,omitempty"`
	City           string             `bson:"city,omitempty" json:"city,omitempty"`
	State          string             `bson:"state,omitempty" json:"state,omitempty"`
	Pincode        string             `bson:"pincode,omitempty" json:"pincode,omitempty"`
	Country        string             `bson:"country,omitempty" json:"country,omitempty"`
	AccountName    string             `bson:"accountName,omitempty" json:"accountName,omitempty"`
	AccountNumber  string             `bson:"accountNumber,omitempty" json:"accountNumber,omitempty"`
	BankBranchName string             `bson:"bankBranchName,omitempty" json:"bankBranchName,omitempty"`
	IFSCCode       string             `bson:"ifscCode,omitempty" json:"ifscCode,omitempty"`
	Status         string             `bson:"status,omitempty" json:"status,omitempty"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Attachments    []Attachment       `bson:"attachments,omitempty" json:"attachments,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// StatusActive is the default lifecycle status for new records.
const StatusActive = "Active"
