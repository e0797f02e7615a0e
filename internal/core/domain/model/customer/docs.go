// Package customer holds the read model for rental customers. Accounts are
// created and edited outside this service; checkout only needs to resolve a
// customer and snapshot their contact details.
package customer
