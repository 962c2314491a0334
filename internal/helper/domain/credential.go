package domain

import (
	"path/filepath"

	dErrors "helperhub/pkg/domain-errors"
)

// CredentialKind distinguishes the uploaded document families. The criminal
// record variant carries a stricter emptiness rule.
type CredentialKind string

const (
	KindCredential                CredentialKind = "credential"
	KindDiploma                   CredentialKind = "diploma"
	KindCriminalRecordCertificate CredentialKind = "criminal_record_certificate"
)

// credentialMaxSize caps uploads at 10 MiB.
const credentialMaxSize = 10 << 20

// SizeUnknown marks a credential whose size was not reported by the client.
const SizeUnknown int64 = -1

// Credential is a validated document reference: a PDF of acceptable size.
// The file content itself lives with the storage provider; the domain only
// guards the metadata invariants.
type Credential struct {
	kind     CredentialKind
	filename string
	size     int64
}

// NewCredential validates a generic supporting document.
func NewCredential(filename string, size int64) (Credential, error) {
	return newCredential(KindCredential, filename, size)
}

// NewDiploma validates a diploma document.
func NewDiploma(filename string, size int64) (Credential, error) {
	return newCredential(KindDiploma, filename, size)
}

// NewCriminalRecordCertificate validates a criminal record extract. Unlike
// the other kinds, a present-but-zero size is rejected as an empty file,
// distinct from the oversize failure.
func NewCriminalRecordCertificate(filename string, size int64) (Credential, error) {
	if size == 0 {
		return Credential{}, dErrors.New(dErrors.CodeCredentialEmpty, "criminal record certificate file is empty").
			WithDetail("field", "criminal_record_certificate").
			WithDetail("filename", filename)
	}
	return newCredential(KindCriminalRecordCertificate, filename, size)
}

func newCredential(kind CredentialKind, filename string, size int64) (Credential, error) {
	// Extension match is exact: ".PDF" is not ".pdf".
	if filepath.Ext(filename) != ".pdf" {
		return Credential{}, dErrors.New(dErrors.CodeCredentialWrongType, "document must be a PDF file").
			WithDetail("field", string(kind)).
			WithDetail("filename", filename)
	}
	if size != SizeUnknown && size < 0 {
		return Credential{}, dErrors.Newf(dErrors.CodeCredentialSizeInvalid, "document size %d is invalid", size).
			WithDetail("field", string(kind)).
			WithDetail("size", size)
	}
	if size != SizeUnknown && size > credentialMaxSize {
		return Credential{}, dErrors.Newf(dErrors.CodeCredentialTooLarge, "document exceeds %d bytes", int64(credentialMaxSize)).
			WithDetail("field", string(kind)).
			WithDetail("size", size)
	}
	return Credential{kind: kind, filename: filename, size: size}, nil
}

func (c Credential) Kind() CredentialKind { return c.kind }

func (c Credential) Filename() string { return c.filename }

// Size returns the byte size, or SizeUnknown when the client did not report
// one.
func (c Credential) Size() int64 { return c.size }

func (c Credential) IsZero() bool { return c.filename == "" }
