// Package domain defines the value types shared by the cryptographic services:
// encrypted blobs and the tagged field values stored inside user profiles.
package domain

// AlgorithmAESGCM identifies AES-256-GCM, the only field encryption
// algorithm currently produced. The identifier travels inside every blob so
// that stored data remains decodable if the default ever changes.
const AlgorithmAESGCM = "aes-256-gcm"

// EncryptedBlob is the stored form of an encrypted profile field. It is only
// ever produced and consumed by the field encryption service; no other
// component inspects its internals.
//
// All byte fields are hex-encoded to match the wire format the browser
// extension already persists.
type EncryptedBlob struct {
	Ciphertext string `json:"encrypted"`
	IV         string `json:"iv"`
	AuthTag    string `json:"authTag"`
	Algorithm  string `json:"algorithm"`
}
