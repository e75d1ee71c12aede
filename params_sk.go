package opensshkey

// Security-key (FIDO/U2F, "sk-*@openssh.com") variants. These keys live on
// a hardware authenticator: the private scalar never leaves the device,
// so unlike every other variant here there is no stdlib crypto object that
// represents one, and no software generator can produce one. Both
// variants are schema-only: no conversion adapters, no Generate.

var skEd25519Variant = &Variant{
	keyType: TypeSKEd25519,
	publicSchema: Schema{
		{Name: "public", Tag: TagBytes},
		{Name: "application", Tag: TagString},
	},
	privateSchema: Schema{
		{Name: "public", Tag: TagBytes},
		{Name: "application", Tag: TagString},
		{Name: "flags", Tag: TagU8},
		{Name: "key_handle", Tag: TagBytes},
		{Name: "reserved", Tag: TagBytes},
	},
	validatePublic: validateEd25519Public,
}

var skECDSA256Variant = &Variant{
	keyType: TypeSKECDSA256,
	publicSchema: Schema{
		{Name: "identifier", Tag: TagString},
		{Name: "q", Tag: TagBytes},
		{Name: "application", Tag: TagString},
	},
	privateSchema: Schema{
		{Name: "identifier", Tag: TagString},
		{Name: "q", Tag: TagBytes},
		{Name: "application", Tag: TagString},
		{Name: "flags", Tag: TagU8},
		{Name: "key_handle", Tag: TagBytes},
		{Name: "reserved", Tag: TagBytes},
	},
}
