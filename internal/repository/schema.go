package repository

// Schema creates the reference and order tables. It is idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS prefecture (
	prefecture_id   VARCHAR(2) PRIMARY KEY,
	prefecture_name VARCHAR(10) NOT NULL
);

CREATE TABLE IF NOT EXISTS prefecture_distance (
	prefecture_id_from VARCHAR(2) NOT NULL REFERENCES prefecture (prefecture_id),
	prefecture_id_to   VARCHAR(2) NOT NULL REFERENCES prefecture (prefecture_id),
	distance           DOUBLE PRECISION NOT NULL CHECK (distance >= 0),
	PRIMARY KEY (prefecture_id_from, prefecture_id_to)
);

CREATE TABLE IF NOT EXISTS package_box (
	package_id   INTEGER PRIMARY KEY,
	package_name VARCHAR(32) NOT NULL,
	box          INTEGER NOT NULL CHECK (box >= 0)
);

CREATE TABLE IF NOT EXISTS truck_capacity (
	truck_id INTEGER PRIMARY KEY,
	max_box  INTEGER NOT NULL CHECK (max_box > 0),
	price    INTEGER NOT NULL CHECK (price >= 0)
);

CREATE TABLE IF NOT EXISTS optional_service (
	service_id   INTEGER PRIMARY KEY,
	service_name VARCHAR(32) NOT NULL,
	price        INTEGER NOT NULL CHECK (price >= 0)
);

CREATE TABLE IF NOT EXISTS customer (
	customer_id       BIGSERIAL PRIMARY KEY,
	old_prefecture_id VARCHAR(2) NOT NULL REFERENCES prefecture (prefecture_id),
	new_prefecture_id VARCHAR(2) NOT NULL REFERENCES prefecture (prefecture_id),
	customer_name     VARCHAR(64) NOT NULL,
	tel               VARCHAR(20) NOT NULL,
	email             VARCHAR(256) NOT NULL,
	old_address       VARCHAR(256) NOT NULL,
	new_address       VARCHAR(256) NOT NULL,
	planned_date      DATE NOT NULL,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS customer_option_service (
	customer_id BIGINT NOT NULL REFERENCES customer (customer_id),
	service_id  INTEGER NOT NULL REFERENCES optional_service (service_id),
	PRIMARY KEY (customer_id, service_id)
);

CREATE TABLE IF NOT EXISTS customer_package (
	customer_id    BIGINT NOT NULL REFERENCES customer (customer_id),
	package_id     INTEGER NOT NULL REFERENCES package_box (package_id),
	package_number INTEGER NOT NULL CHECK (package_number > 0),
	PRIMARY KEY (customer_id, package_id)
);
`
