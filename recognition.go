package tcplay

// Recognize tries every (PRF, cipher) combination in the fixed order
// of PRFAlgos x CipherAlgos against rawHeader, deriving a candidate
// key via PBKDF2-HMAC(PRF.Name, passphrase, rawHeader's salt,
// PRF.Iterations, MaxKeySize) for each PRF and attempting
// DecryptHeader+VerifyHeader for each cipher under that key. The first
// combination that verifies wins and is used, at the point of
// acceptance, to build the returned Descriptor; no later combination
// is tried. Per-attempt failures are never surfaced — only overall
// success or exhaustion is visible to the caller, so a caller cannot
// distinguish a wrong passphrase from a non-TrueCrypt volume.
func Recognize(passphrase []byte, rawHeader []byte, device string) (*Descriptor, error) {
	if err := ValidateRawHeader(rawHeader); err != nil {
		return nil, err
	}

	salt := rawHeader[:SaltSize]

	for _, prf := range PRFAlgos {
		desc, found, err := tryPRF(passphrase, salt, rawHeader, device, prf)
		if err != nil {
			continue
		}
		if found {
			return desc, nil
		}
	}

	return nil, &AuthOrFormatError{}
}

// tryPRF derives the candidate key for one PRF entry and attempts
// every cipher against it. The derived key is always freed before
// returning; a rejected header's key material is freed immediately,
// while an accepted header's is handed to BuildDescriptor, which frees
// it once the hex key it needs has been copied out.
func tryPRF(passphrase, salt, rawHeader []byte, device string, prf PRFAlgo) (*Descriptor, bool, error) {
	keyBuf, err := DeriveKey(prf.Name, passphrase, salt, prf.Iterations, MaxKeySize)
	if err != nil {
		return nil, false, err
	}
	defer mustFree(keyBuf)
	key := keyBuf.Bytes()

	for _, cipher := range CipherAlgos {
		h, err := DecryptHeader(rawHeader, cipher, key[:cipher.KeyLen])
		if err != nil {
			continue
		}

		if !VerifyHeader(h) {
			mustFree(h.Keys)
			continue
		}

		desc, err := BuildDescriptor(device, cipher, prf, h)
		return desc, true, err
	}

	return nil, false, nil
}
