// Package signing computes signature domains and signing roots.
package signing

import (
	ssz "github.com/ferranbt/fastssz"
	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/synclight/config/fieldparams"
)

// HashRoot is any object with an SSZ hash tree root.
type HashRoot interface {
	HashTreeRoot() ([32]byte, error)
}

// ForkData is the container hashed into a domain.
type ForkData struct {
	CurrentVersion        [fieldparams.VersionLength]byte
	GenesisValidatorsRoot [fieldparams.RootLength]byte
}

// HashTreeRoot ssz hashes the fork data.
func (f *ForkData) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	indx := hh.Index()
	hh.PutBytes(f.CurrentVersion[:])
	hh.PutBytes(f.GenesisValidatorsRoot[:])
	hh.Merkleize(indx)
	return hh.HashRoot()
}

// SigningData is the container whose root is signed.
type SigningData struct {
	ObjectRoot [fieldparams.RootLength]byte
	Domain     [fieldparams.DomainLength]byte
}

// HashTreeRoot ssz hashes the signing data.
func (s *SigningData) HashTreeRoot() ([32]byte, error) {
	hh := ssz.NewHasher()
	indx := hh.Index()
	hh.PutBytes(s.ObjectRoot[:])
	hh.PutBytes(s.Domain[:])
	hh.Merkleize(indx)
	return hh.HashRoot()
}

// ComputeForkDataRoot returns the hash tree root of ForkData{version, genesisValidatorsRoot}.
//
// Spec pseudocode definition:
//  def compute_fork_data_root(current_version: Version, genesis_validators_root: Root) -> Root:
//    return hash_tree_root(ForkData(
//        current_version=current_version,
//        genesis_validators_root=genesis_validators_root,
//    ))
func ComputeForkDataRoot(version [fieldparams.VersionLength]byte, genesisValidatorsRoot [fieldparams.RootLength]byte) ([32]byte, error) {
	r, err := (&ForkData{CurrentVersion: version, GenesisValidatorsRoot: genesisValidatorsRoot}).HashTreeRoot()
	if err != nil {
		return [32]byte{}, errors.Wrap(err, "could not hash fork data")
	}
	return r, nil
}

// ComputeDomain returns the domain for domainType at the given fork.
//
// Spec pseudocode definition:
//  def compute_domain(domain_type: DomainType, fork_version: Version=None, genesis_validators_root: Root=None) -> Domain:
//    fork_data_root = compute_fork_data_root(fork_version, genesis_validators_root)
//    return Domain(domain_type + fork_data_root[:28])
func ComputeDomain(domainType [4]byte, forkVersion [fieldparams.VersionLength]byte, genesisValidatorsRoot [fieldparams.RootLength]byte) ([fieldparams.DomainLength]byte, error) {
	forkDataRoot, err := ComputeForkDataRoot(forkVersion, genesisValidatorsRoot)
	if err != nil {
		return [fieldparams.DomainLength]byte{}, err
	}
	var domain [fieldparams.DomainLength]byte
	copy(domain[:4], domainType[:])
	copy(domain[4:], forkDataRoot[:28])
	return domain, nil
}

// ComputeSigningRoot computes the root of the object by calculating the hash
// tree root of the signing data with the given domain.
//
// Spec pseudocode definition:
//  def compute_signing_root(ssz_object: SSZObject, domain: Domain) -> Root:
//    return hash_tree_root(SigningData(
//        object_root=hash_tree_root(ssz_object),
//        domain=domain,
//    ))
func ComputeSigningRoot(object HashRoot, domain [fieldparams.DomainLength]byte) ([32]byte, error) {
	objRoot, err := object.HashTreeRoot()
	if err != nil {
		return [32]byte{}, errors.Wrap(err, "could not hash object")
	}
	return (&SigningData{ObjectRoot: objRoot, Domain: domain}).HashTreeRoot()
}
