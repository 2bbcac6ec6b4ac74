package tcplay

// Sizing and on-disk layout constants ported from the reference
// implementation's tcplay.h.
const (
	// MaxPassphraseSize is the fixed-size passphrase buffer used
	// whenever keyfiles are mixed in; the effective passphrase length
	// then becomes the whole buffer rather than its NUL-terminated
	// prefix.
	MaxPassphraseSize = 64

	// MaxKeyfileSize bounds how much of a keyfile's content is folded
	// into the key pool; bytes beyond this are ignored.
	MaxKeyfileSize = 1 << 20 // 1 MiB

	// KeyPoolSize is the fixed size of the keyfile mixing pool.
	KeyPoolSize = 64

	// MaxKeySize is the number of bytes PBKDF2 derives per trial,
	// large enough to cover the widest supported cipher key (AES-256-XTS,
	// 64 bytes).
	MaxKeySize = 64

	// HeaderSize is the size in bytes of one on-disk encrypted header
	// block: 64 bytes of plaintext salt followed by 448 bytes of
	// AES-XTS ciphertext.
	HeaderSize = 512

	// SaltSize is the size of the plaintext salt prefix of a header
	// block.
	SaltSize = 64

	// CiphertextSize is the size of the encrypted suffix of a header
	// block.
	CiphertextSize = HeaderSize - SaltSize

	// HeaderOffsetPrimary is the byte offset of the primary header on
	// a volume that is not under whole-disk system encryption.
	HeaderOffsetPrimary = 0

	// HeaderOffsetHidden is the fixed byte offset of the hidden-volume
	// header.
	HeaderOffsetHidden = 65536

	// HeaderOffsetSystem is the fixed byte offset of the primary
	// header on a disk under whole-disk system encryption.
	HeaderOffsetSystem = 31744
)

// PRFAlgo names a password-based key derivation trial: a hash and its
// PBKDF2 iteration count. Order within PRFAlgos is significant.
type PRFAlgo struct {
	Name       string
	Iterations int
}

// PRFAlgos is the fixed, ordered trial list. Do not reorder: the
// ordering places the two most common legacy choices first, and a
// conformant implementation must try them in this order.
var PRFAlgos = []PRFAlgo{
	{Name: "RIPEMD160", Iterations: 2000},
	{Name: "RIPEMD160", Iterations: 1000},
	{Name: "SHA512", Iterations: 1000},
	{Name: "Whirlpool", Iterations: 1000},
}

// CipherAlgo names a bulk cipher trial: its display name, the
// dm-crypt mode string used in the mapping parameter line, its key
// length, and its IV length.
type CipherAlgo struct {
	Name        string
	DMCryptMode string
	KeyLen      int
	IVLen       int
}

// CipherAlgos is the fixed, ordered trial list.
var CipherAlgos = []CipherAlgo{
	{Name: "AES-128-XTS", DMCryptMode: "aes-xts-plain", KeyLen: 32, IVLen: 8},
	{Name: "AES-256-XTS", DMCryptMode: "aes-xts-plain", KeyLen: 64, IVLen: 8},
}
