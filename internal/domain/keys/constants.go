package keys

// AlgorithmTextbookRSA identifies unpadded RSA keys.
const AlgorithmTextbookRSA = "TRSA"

// KeyTypePrivate represents a private key
const KeyTypePrivate = "private"

// KeyTypePublic represents a public key
const KeyTypePublic = "public"
